package managers

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

type fakeFileRepository struct {
	mu        sync.Mutex
	entries   map[string]domain.FileEntry
	insertErr error
	updateErr map[string]error
	deleteErr map[string]error
}

func newFakeFileRepository() *fakeFileRepository {
	return &fakeFileRepository{
		entries:   make(map[string]domain.FileEntry),
		updateErr: make(map[string]error),
		deleteErr: make(map[string]error),
	}
}

func (r *fakeFileRepository) Insert(_ context.Context, entry domain.FileEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	r.entries[entry.ID] = entry
	return nil
}

func (r *fakeFileRepository) Get(_ context.Context, userID, entryID string) (domain.FileEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[entryID]
	if !ok || entry.UserID != userID {
		return domain.FileEntry{}, domain.ErrNotFound
	}
	return entry, nil
}

func (r *fakeFileRepository) List(_ context.Context, filter domain.FileEntryFilter) ([]domain.FileEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.FileEntry
	for _, entry := range r.entries {
		if entry.UserID != filter.UserID {
			continue
		}
		if filter.HasParent {
			if filter.ParentFolderID == nil {
				if entry.ParentFolderID != nil {
					continue
				}
			} else if entry.ParentFolderID == nil || *entry.ParentFolderID != *filter.ParentFolderID {
				continue
			}
		}
		if filter.IsArchived != nil && entry.IsArchived != *filter.IsArchived {
			continue
		}
		if filter.IsFolder != nil && entry.IsFolder != *filter.IsFolder {
			continue
		}
		if filter.CategoryID != nil && (entry.CategoryID == nil || *entry.CategoryID != *filter.CategoryID) {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (r *fakeFileRepository) Update(_ context.Context, userID, entryID string, patch domain.FileEntryPatch) (domain.FileEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.updateErr[entryID]; err != nil {
		return domain.FileEntry{}, err
	}

	entry, ok := r.entries[entryID]
	if !ok || entry.UserID != userID {
		return domain.FileEntry{}, domain.ErrNotFound
	}

	if patch.Name != nil {
		entry.Name = *patch.Name
	}
	if patch.ParentFolderID != nil {
		entry.ParentFolderID = *patch.ParentFolderID
	}
	if patch.CategoryID != nil {
		entry.CategoryID = *patch.CategoryID
	}
	if patch.IsStarred != nil {
		entry.IsStarred = *patch.IsStarred
	}
	if patch.IsArchived != nil {
		entry.IsArchived = *patch.IsArchived
	}
	if patch.LastAccessedAt != nil {
		entry.LastAccessedAt = patch.LastAccessedAt
	}
	entry.UpdatedAt = time.Now().UTC()

	r.entries[entryID] = entry
	return entry, nil
}

func (r *fakeFileRepository) Delete(_ context.Context, userID, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.deleteErr[entryID]; err != nil {
		return err
	}

	entry, ok := r.entries[entryID]
	if !ok || entry.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.entries, entryID)
	return nil
}

func (r *fakeFileRepository) ClearCategory(_ context.Context, userID, categoryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, entry := range r.entries {
		if entry.UserID == userID && entry.CategoryID != nil && *entry.CategoryID == categoryID {
			entry.CategoryID = nil
			r.entries[id] = entry
		}
	}
	return nil
}

type fakeCategoryRepository struct {
	mu         sync.Mutex
	categories map[string]domain.FileCategory
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[string]domain.FileCategory)}
}

func (r *fakeCategoryRepository) Insert(_ context.Context, category domain.FileCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) Get(_ context.Context, userID, categoryID string) (domain.FileCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	category, ok := r.categories[categoryID]
	if !ok || category.UserID != userID {
		return domain.FileCategory{}, domain.ErrNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepository) List(_ context.Context, userID string) ([]domain.FileCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.FileCategory
	for _, category := range r.categories {
		if category.UserID == userID {
			out = append(out, category)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepository) Update(_ context.Context, category domain.FileCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.categories[category.ID]
	if !ok || existing.UserID != category.UserID {
		return domain.ErrNotFound
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepository) Delete(_ context.Context, userID, categoryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.categories[categoryID]
	if !ok || existing.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.categories, categoryID)
	return nil
}

type fakeStorageGateway struct {
	mu        sync.Mutex
	objects   map[string][]byte
	removed   []string
	uploadErr error
	removeErr error
}

func newFakeStorageGateway() *fakeStorageGateway {
	return &fakeStorageGateway{objects: make(map[string][]byte)}
}

func (g *fakeStorageGateway) Upload(_ context.Context, path, _ string, body io.Reader) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.uploadErr != nil {
		return "", g.uploadErr
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	g.objects[path] = data
	return path, nil
}

func (g *fakeStorageGateway) PublicURL(path string) string {
	return "https://files.example.com/" + path
}

func (g *fakeStorageGateway) Remove(_ context.Context, path string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.removeErr != nil {
		return g.removeErr
	}
	delete(g.objects, path)
	g.removed = append(g.removed, path)
	return nil
}

type fakeShareRepository struct {
	mu    sync.Mutex
	links map[string]domain.ShareLink // keyed by token
}

func newFakeShareRepository() *fakeShareRepository {
	return &fakeShareRepository{links: make(map[string]domain.ShareLink)}
}

func (r *fakeShareRepository) Insert(_ context.Context, link domain.ShareLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links[link.Token] = link
	return nil
}

func (r *fakeShareRepository) GetByToken(_ context.Context, token string) (domain.ShareLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	link, ok := r.links[token]
	if !ok {
		return domain.ShareLink{}, domain.ErrNotFound
	}
	return link, nil
}

func (r *fakeShareRepository) DeleteExpiredBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var purged int64
	for token, link := range r.links {
		if link.ExpiresAt != nil && link.ExpiresAt.Before(cutoff) {
			delete(r.links, token)
			purged++
		}
	}
	return purged, nil
}

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]domain.User)}
}

func (r *fakeUserRepository) Insert(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepository) Get(_ context.Context, userID string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[userID]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepository) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

type fakeClientRepository struct {
	mu      sync.Mutex
	clients map[string]domain.Client
}

func newFakeClientRepository() *fakeClientRepository {
	return &fakeClientRepository{clients: make(map[string]domain.Client)}
}

func (r *fakeClientRepository) Insert(_ context.Context, client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepository) Get(_ context.Context, userID, clientID string) (domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	client, ok := r.clients[clientID]
	if !ok || client.UserID != userID {
		return domain.Client{}, domain.ErrNotFound
	}
	return client, nil
}

func (r *fakeClientRepository) List(_ context.Context, userID string, status *domain.ClientStatus) ([]domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Client
	for _, client := range r.clients {
		if client.UserID != userID {
			continue
		}
		if status != nil && client.Status != *status {
			continue
		}
		out = append(out, client)
	}
	return out, nil
}

func (r *fakeClientRepository) Update(_ context.Context, client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.clients[client.ID]
	if !ok || existing.UserID != client.UserID {
		return domain.ErrNotFound
	}
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepository) Delete(_ context.Context, userID, clientID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.clients[clientID]
	if !ok || existing.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.clients, clientID)
	return nil
}

type fakeInvoiceRepository struct {
	mu       sync.Mutex
	invoices map[string]domain.Invoice
}

func newFakeInvoiceRepository() *fakeInvoiceRepository {
	return &fakeInvoiceRepository{invoices: make(map[string]domain.Invoice)}
}

func (r *fakeInvoiceRepository) Insert(_ context.Context, invoice domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeInvoiceRepository) Get(_ context.Context, userID, invoiceID string) (domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	invoice, ok := r.invoices[invoiceID]
	if !ok || invoice.UserID != userID {
		return domain.Invoice{}, domain.ErrNotFound
	}
	return invoice, nil
}

func (r *fakeInvoiceRepository) List(_ context.Context, userID string, status *domain.InvoiceStatus) ([]domain.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Invoice
	for _, invoice := range r.invoices {
		if invoice.UserID != userID {
			continue
		}
		if status != nil && invoice.Status != *status {
			continue
		}
		out = append(out, invoice)
	}
	return out, nil
}

func (r *fakeInvoiceRepository) Update(_ context.Context, invoice domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.invoices[invoice.ID]
	if !ok || existing.UserID != invoice.UserID {
		return domain.ErrNotFound
	}
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *fakeInvoiceRepository) Delete(_ context.Context, userID, invoiceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.invoices[invoiceID]
	if !ok || existing.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.invoices, invoiceID)
	return nil
}

func (r *fakeInvoiceRepository) MarkOverdueBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var flipped int64
	for id, invoice := range r.invoices {
		if invoice.Status == domain.InvoiceStatusSent && invoice.DueDate.Before(cutoff) {
			invoice.Status = domain.InvoiceStatusOverdue
			r.invoices[id] = invoice
			flipped++
		}
	}
	return flipped, nil
}

type fakePortfolioRepository struct {
	mu         sync.Mutex
	portfolios map[string]domain.Portfolio
}

func newFakePortfolioRepository() *fakePortfolioRepository {
	return &fakePortfolioRepository{portfolios: make(map[string]domain.Portfolio)}
}

func (r *fakePortfolioRepository) Insert(_ context.Context, portfolio domain.Portfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.portfolios[portfolio.ID] = portfolio
	return nil
}

func (r *fakePortfolioRepository) Get(_ context.Context, userID, portfolioID string) (domain.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	portfolio, ok := r.portfolios[portfolioID]
	if !ok || portfolio.UserID != userID {
		return domain.Portfolio{}, domain.ErrNotFound
	}
	return portfolio, nil
}

func (r *fakePortfolioRepository) GetBySlug(_ context.Context, slugValue string) (domain.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, portfolio := range r.portfolios {
		if portfolio.Slug == slugValue {
			return portfolio, nil
		}
	}
	return domain.Portfolio{}, domain.ErrNotFound
}

func (r *fakePortfolioRepository) List(_ context.Context, userID string) ([]domain.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Portfolio
	for _, portfolio := range r.portfolios {
		if portfolio.UserID == userID {
			out = append(out, portfolio)
		}
	}
	return out, nil
}

func (r *fakePortfolioRepository) SlugExists(_ context.Context, slugValue string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, portfolio := range r.portfolios {
		if portfolio.Slug == slugValue {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePortfolioRepository) Update(_ context.Context, portfolio domain.Portfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.portfolios[portfolio.ID]
	if !ok || existing.UserID != portfolio.UserID {
		return domain.ErrNotFound
	}
	r.portfolios[portfolio.ID] = portfolio
	return nil
}

func (r *fakePortfolioRepository) Delete(_ context.Context, userID, portfolioID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.portfolios[portfolioID]
	if !ok || existing.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.portfolios, portfolioID)
	return nil
}

type fakeConversationRepository struct {
	mu            sync.Mutex
	conversations map[string]domain.Conversation
}

func newFakeConversationRepository() *fakeConversationRepository {
	return &fakeConversationRepository{conversations: make(map[string]domain.Conversation)}
}

func (r *fakeConversationRepository) Upsert(_ context.Context, conversation domain.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conversations[conversation.ID] = conversation
	return nil
}

func (r *fakeConversationRepository) Get(_ context.Context, userID, conversationID string) (domain.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conversation, ok := r.conversations[conversationID]
	if !ok || conversation.UserID != userID {
		return domain.Conversation{}, domain.ErrNotFound
	}
	return conversation, nil
}

func (r *fakeConversationRepository) List(_ context.Context, userID string) ([]domain.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Conversation
	for _, conversation := range r.conversations {
		if conversation.UserID == userID {
			out = append(out, conversation)
		}
	}
	return out, nil
}

func (r *fakeConversationRepository) Delete(_ context.Context, userID, conversationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.conversations[conversationID]
	if !ok || existing.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.conversations, conversationID)
	return nil
}

type fakeEmailSender struct {
	mu       sync.Mutex
	sent     []string // recipient addresses
	sendErr  error
	lastHTML string
}

func (s *fakeEmailSender) Send(_ context.Context, to, _, html string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, to)
	s.lastHTML = html
	return nil
}

type fakePaymentLinkIssuer struct {
	url string
	err error
}

func (p *fakePaymentLinkIssuer) CreatePaymentLink(_ context.Context, _ domain.Invoice) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.url, nil
}

type fakePDFRenderer struct {
	output []byte
	err    error
}

func (p *fakePDFRenderer) RenderPDF(_ context.Context, _ string) ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.output, nil
}

type fakeLanguageModel struct {
	reply string
	err   error
	seen  []domain.ChatMessage
}

func (m *fakeLanguageModel) Generate(_ context.Context, _ string, messages []domain.ChatMessage) (string, error) {
	m.seen = messages
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

type fakeTaskRepository struct {
	mu    sync.Mutex
	tasks map[string]domain.Task
}

func newFakeTaskRepository() *fakeTaskRepository {
	return &fakeTaskRepository{tasks: make(map[string]domain.Task)}
}

func (r *fakeTaskRepository) Insert(_ context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepository) Get(_ context.Context, userID, taskID string) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[taskID]
	if !ok || task.UserID != userID {
		return domain.Task{}, domain.ErrNotFound
	}
	return task, nil
}

func (r *fakeTaskRepository) List(_ context.Context, userID string, status *domain.TaskStatus) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Task
	for _, task := range r.tasks {
		if task.UserID != userID {
			continue
		}
		if status != nil && task.Status != *status {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

func (r *fakeTaskRepository) Update(_ context.Context, task domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return domain.ErrNotFound
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepository) Delete(_ context.Context, userID, taskID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.tasks[taskID]
	if !ok || existing.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

func (r *fakeTaskRepository) CountOpen(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, task := range r.tasks {
		if task.UserID == userID && task.Status != domain.TaskStatusDone {
			count++
		}
	}
	return count, nil
}

type fakeExpenseRepository struct {
	mu       sync.Mutex
	expenses map[string]domain.Expense
}

func newFakeExpenseRepository() *fakeExpenseRepository {
	return &fakeExpenseRepository{expenses: make(map[string]domain.Expense)}
}

func (r *fakeExpenseRepository) Insert(_ context.Context, expense domain.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepository) Get(_ context.Context, userID, expenseID string) (domain.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	expense, ok := r.expenses[expenseID]
	if !ok || expense.UserID != userID {
		return domain.Expense{}, domain.ErrNotFound
	}
	return expense, nil
}

func (r *fakeExpenseRepository) List(_ context.Context, userID string, from, to *time.Time) ([]domain.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Expense
	for _, expense := range r.expenses {
		if expense.UserID != userID {
			continue
		}
		if from != nil && expense.Date.Before(*from) {
			continue
		}
		if to != nil && expense.Date.After(*to) {
			continue
		}
		out = append(out, expense)
	}
	return out, nil
}

func (r *fakeExpenseRepository) Update(_ context.Context, expense domain.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.expenses[expense.ID]
	if !ok || existing.UserID != expense.UserID {
		return domain.ErrNotFound
	}
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepository) Delete(_ context.Context, userID, expenseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.expenses[expenseID]
	if !ok || existing.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.expenses, expenseID)
	return nil
}

func (r *fakeExpenseRepository) SumSince(_ context.Context, userID string, since time.Time) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total float64
	for _, expense := range r.expenses {
		if expense.UserID == userID && !expense.Date.Before(since) {
			total += expense.Amount
		}
	}
	return total, nil
}

type fakeProjectRepository struct {
	mu       sync.Mutex
	projects map[string]domain.Project
}

func newFakeProjectRepository() *fakeProjectRepository {
	return &fakeProjectRepository{projects: make(map[string]domain.Project)}
}

func (r *fakeProjectRepository) Insert(_ context.Context, project domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepository) Get(_ context.Context, userID, projectID string) (domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	project, ok := r.projects[projectID]
	if !ok || project.UserID != userID {
		return domain.Project{}, domain.ErrNotFound
	}
	return project, nil
}

func (r *fakeProjectRepository) List(_ context.Context, userID string, status *domain.ProjectStatus) ([]domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Project
	for _, project := range r.projects {
		if project.UserID != userID {
			continue
		}
		if status != nil && project.Status != *status {
			continue
		}
		out = append(out, project)
	}
	return out, nil
}

func (r *fakeProjectRepository) CountByClient(_ context.Context, userID, clientID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, project := range r.projects {
		if project.UserID == userID && project.ClientID == clientID {
			count++
		}
	}
	return count, nil
}

func (r *fakeProjectRepository) Update(_ context.Context, project domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.projects[project.ID]
	if !ok || existing.UserID != project.UserID {
		return domain.ErrNotFound
	}
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepository) Delete(_ context.Context, userID, projectID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.projects[projectID]
	if !ok || existing.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.projects, projectID)
	return nil
}
