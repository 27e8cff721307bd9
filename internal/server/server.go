package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/auth"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/controllers"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/middlewares"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/version"
)

type HTTPServerDependencies struct {
	TokenIssuer         *auth.TokenIssuer
	AuthController      *controllers.AuthController
	FileController      *controllers.FileController
	ShareController     *controllers.ShareController
	ClientController    *controllers.ClientController
	ProjectController   *controllers.ProjectController
	InvoiceController   *controllers.InvoiceController
	ExpenseController   *controllers.ExpenseController
	TaskController      *controllers.TaskController
	PortfolioController *controllers.PortfolioController
	AssistantController *controllers.AssistantController
	DashboardController *controllers.DashboardController
}

func NewHTTPServer(deps HTTPServerDependencies) *fiber.App {
	router := fiber.New(fiber.Config{
		AppName:   "hyperlans-api",
		BodyLimit: 100 * 1024 * 1024,
	})

	router.Use(cors.New())
	router.Use(logger.New())

	router.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"service":   "hyperlans-api",
			"version":   version.GetShortVersion(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Public routes
	router.Post("/auth/register", deps.AuthController.Register)
	router.Post("/auth/login", deps.AuthController.Login)
	router.Get("/share", deps.ShareController.ResolveShareLink)
	router.Get("/p/:slug", deps.PortfolioController.GetPublished)

	api := router.Group("/api")
	api.Use(middlewares.AuthMiddleware(deps.TokenIssuer))

	api.Get("/me", deps.AuthController.Me)
	api.Get("/dashboard", deps.DashboardController.GetStats)

	files := api.Group("/files")
	files.Get("/", deps.FileController.ListChildren)
	files.Post("/", deps.FileController.UploadFile)
	files.Post("/folders", deps.FileController.CreateFolder)
	files.Get("/folders", deps.FileController.ListFolders)
	files.Post("/bulk", deps.FileController.ApplyBulk)
	files.Get("/:entryID", deps.FileController.GetEntry)
	files.Get("/:entryID/breadcrumbs", deps.FileController.AncestorChain)
	files.Patch("/:entryID/rename", deps.FileController.Rename)
	files.Patch("/:entryID/move", deps.FileController.Move)
	files.Patch("/:entryID/star", deps.FileController.ToggleStar)
	files.Patch("/:entryID/archive", deps.FileController.ToggleArchive)
	files.Patch("/:entryID/category", deps.FileController.SetCategory)
	files.Delete("/:entryID", deps.FileController.Delete)

	categories := api.Group("/categories")
	categories.Get("/", deps.FileController.ListCategories)
	categories.Post("/", deps.FileController.CreateCategory)
	categories.Put("/:categoryID", deps.FileController.UpdateCategory)
	categories.Delete("/:categoryID", deps.FileController.DeleteCategory)

	api.Post("/shares", deps.ShareController.CreateShareLink)

	clients := api.Group("/clients")
	clients.Get("/", deps.ClientController.ListClients)
	clients.Post("/", deps.ClientController.CreateClient)
	clients.Get("/:clientID", deps.ClientController.GetClient)
	clients.Put("/:clientID", deps.ClientController.UpdateClient)
	clients.Delete("/:clientID", deps.ClientController.DeleteClient)

	projects := api.Group("/projects")
	projects.Get("/", deps.ProjectController.ListProjects)
	projects.Post("/", deps.ProjectController.CreateProject)
	projects.Get("/:projectID", deps.ProjectController.GetProject)
	projects.Put("/:projectID", deps.ProjectController.UpdateProject)
	projects.Delete("/:projectID", deps.ProjectController.DeleteProject)

	invoices := api.Group("/invoices")
	invoices.Get("/", deps.InvoiceController.ListInvoices)
	invoices.Post("/", deps.InvoiceController.CreateInvoice)
	invoices.Get("/export", deps.InvoiceController.ExportInvoices)
	invoices.Get("/:invoiceID", deps.InvoiceController.GetInvoice)
	invoices.Put("/:invoiceID", deps.InvoiceController.UpdateInvoice)
	invoices.Delete("/:invoiceID", deps.InvoiceController.DeleteInvoice)
	invoices.Post("/:invoiceID/send", deps.InvoiceController.SendInvoice)
	invoices.Post("/:invoiceID/mark-paid", deps.InvoiceController.MarkPaid)
	invoices.Post("/:invoiceID/payment-link", deps.InvoiceController.CreatePaymentLink)

	expenses := api.Group("/expenses")
	expenses.Get("/", deps.ExpenseController.ListExpenses)
	expenses.Post("/", deps.ExpenseController.CreateExpense)
	expenses.Get("/export", deps.ExpenseController.ExportExpenses)
	expenses.Get("/:expenseID", deps.ExpenseController.GetExpense)
	expenses.Put("/:expenseID", deps.ExpenseController.UpdateExpense)
	expenses.Delete("/:expenseID", deps.ExpenseController.DeleteExpense)

	tasks := api.Group("/tasks")
	tasks.Get("/", deps.TaskController.ListTasks)
	tasks.Post("/", deps.TaskController.CreateTask)
	tasks.Get("/:taskID", deps.TaskController.GetTask)
	tasks.Put("/:taskID", deps.TaskController.UpdateTask)
	tasks.Post("/:taskID/complete", deps.TaskController.CompleteTask)
	tasks.Delete("/:taskID", deps.TaskController.DeleteTask)

	portfolios := api.Group("/portfolios")
	portfolios.Get("/", deps.PortfolioController.ListPortfolios)
	portfolios.Post("/", deps.PortfolioController.CreatePortfolio)
	portfolios.Get("/:portfolioID", deps.PortfolioController.GetPortfolio)
	portfolios.Put("/:portfolioID", deps.PortfolioController.UpdatePortfolio)
	portfolios.Patch("/:portfolioID/publish", deps.PortfolioController.SetPublished)
	portfolios.Get("/:portfolioID/pdf", deps.PortfolioController.ExportPDF)
	portfolios.Delete("/:portfolioID", deps.PortfolioController.DeletePortfolio)

	assistant := api.Group("/assistant")
	assistant.Get("/conversations", deps.AssistantController.ListConversations)
	assistant.Post("/conversations", deps.AssistantController.SendMessage)
	assistant.Get("/conversations/:conversationID", deps.AssistantController.GetConversation)
	assistant.Delete("/conversations/:conversationID", deps.AssistantController.DeleteConversation)

	return router
}
