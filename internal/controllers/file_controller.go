package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/managers"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/middlewares"
)

type FileController struct {
	fileService     domain.FileService
	categoryService domain.CategoryService
}

type FileControllerDependencies struct {
	FileService     domain.FileService
	CategoryService domain.CategoryService
}

func NewFileController(deps FileControllerDependencies) *FileController {
	return &FileController{
		fileService:     deps.FileService,
		categoryService: deps.CategoryService,
	}
}

func (c *FileController) ListChildren(ctx fiber.Ctx) error {
	params := domain.ListChildrenParams{
		UserID: middlewares.UserID(ctx),
		View:   domain.ListViewActive,
		Sort: domain.SortOption{
			Field:      domain.SortField(ctx.Query("sort", string(domain.SortByName))),
			Descending: ctx.Query("order") == "desc",
		},
	}

	if parentID := ctx.Query("parent_id"); parentID != "" {
		params.ParentFolderID = &parentID
	}
	if ctx.Query("view") == string(domain.ListViewArchived) {
		params.View = domain.ListViewArchived
	}

	entries, err := c.fileService.ListChildren(ctx.RequestCtx(), params)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(fiber.Map{"entries": entries})
}

func (c *FileController) AncestorChain(ctx fiber.Ctx) error {
	chain, err := c.fileService.AncestorChain(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("entryID"))
	if err != nil {
		// A broken ancestor still yields the resolvable suffix; serve it
		// so the breadcrumb can degrade instead of disappearing.
		if len(chain) > 0 && errors.Is(err, domain.ErrNotFound) {
			return ctx.JSON(fiber.Map{"breadcrumbs": chain, "incomplete": true})
		}
		return mapDomainError(err)
	}

	return ctx.JSON(fiber.Map{"breadcrumbs": chain})
}

// ListFolders serves one node of the move dialog's lazily expanded folder
// tree: only subfolders, never files.
func (c *FileController) ListFolders(ctx fiber.Ctx) error {
	picker := managers.NewFolderPicker(c.fileService, middlewares.UserID(ctx))

	var parentID *string
	if v := ctx.Query("parent_id"); v != "" {
		parentID = &v
	}

	folders, err := picker.Expand(ctx.RequestCtx(), parentID)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(fiber.Map{"folders": folders})
}

func (c *FileController) GetEntry(ctx fiber.Ctx) error {
	entry, err := c.fileService.GetEntry(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("entryID"))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(entry)
}

func (c *FileController) UploadFile(ctx fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unreadable file")
	}
	defer file.Close()

	params := domain.UploadFileParams{
		UserID:      middlewares.UserID(ctx),
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		SizeInBytes: fileHeader.Size,
		Reader:      file,
	}

	if parentID := ctx.FormValue("parent_id"); parentID != "" {
		params.ParentFolderID = &parentID
	}

	entry, err := c.fileService.UploadFile(ctx.RequestCtx(), params)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(entry)
}

type createFolderRequest struct {
	Name           string  `json:"name"`
	ParentFolderID *string `json:"parent_folder_id"`
}

func (c *FileController) CreateFolder(ctx fiber.Ctx) error {
	var req createFolderRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	entry, err := c.fileService.CreateFolder(ctx.RequestCtx(), domain.CreateFolderParams{
		UserID:         middlewares.UserID(ctx),
		Name:           req.Name,
		ParentFolderID: req.ParentFolderID,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(entry)
}

type renameRequest struct {
	Name string `json:"name"`
}

func (c *FileController) Rename(ctx fiber.Ctx) error {
	var req renameRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	entry, err := c.fileService.Rename(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("entryID"), req.Name)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(entry)
}

type moveRequest struct {
	DestinationID *string `json:"destination_id"`
}

func (c *FileController) Move(ctx fiber.Ctx) error {
	var req moveRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	entry, err := c.fileService.Move(ctx.RequestCtx(), domain.MoveEntryParams{
		UserID:        middlewares.UserID(ctx),
		EntryID:       ctx.Params("entryID"),
		DestinationID: req.DestinationID,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(entry)
}

type toggleRequest struct {
	Value bool `json:"value"`
}

func (c *FileController) ToggleStar(ctx fiber.Ctx) error {
	var req toggleRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	entry, err := c.fileService.ToggleStar(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("entryID"), req.Value)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(entry)
}

func (c *FileController) ToggleArchive(ctx fiber.Ctx) error {
	var req toggleRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	entry, err := c.fileService.ToggleArchive(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("entryID"), req.Value)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(entry)
}

func (c *FileController) Delete(ctx fiber.Ctx) error {
	if err := c.fileService.Delete(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("entryID")); err != nil {
		return mapDomainError(err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}

type bulkRequest struct {
	Action   domain.BulkAction `json:"action"`
	EntryIDs []string          `json:"entry_ids"`
}

func (c *FileController) ApplyBulk(ctx fiber.Ctx) error {
	var req bulkRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	outcome, err := c.fileService.ApplyBulk(ctx.RequestCtx(), domain.ApplyBulkParams{
		UserID:   middlewares.UserID(ctx),
		Action:   req.Action,
		EntryIDs: req.EntryIDs,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(outcome)
}

type setCategoryRequest struct {
	CategoryID *string `json:"category_id"`
}

func (c *FileController) SetCategory(ctx fiber.Ctx) error {
	var req setCategoryRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	entry, err := c.fileService.SetCategory(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("entryID"), req.CategoryID)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(entry)
}

func (c *FileController) ListCategories(ctx fiber.Ctx) error {
	categories, err := c.categoryService.ListCategories(ctx.RequestCtx(), middlewares.UserID(ctx))
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(fiber.Map{"categories": categories})
}

func (c *FileController) CreateCategory(ctx fiber.Ctx) error {
	var category domain.FileCategory

	if err := ctx.Bind().Body(&category); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	category.UserID = middlewares.UserID(ctx)

	created, err := c.categoryService.CreateCategory(ctx.RequestCtx(), category)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(created)
}

func (c *FileController) UpdateCategory(ctx fiber.Ctx) error {
	var category domain.FileCategory

	if err := ctx.Bind().Body(&category); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	category.ID = ctx.Params("categoryID")
	category.UserID = middlewares.UserID(ctx)

	updated, err := c.categoryService.UpdateCategory(ctx.RequestCtx(), category)
	if err != nil {
		return mapDomainError(err)
	}

	return ctx.JSON(updated)
}

func (c *FileController) DeleteCategory(ctx fiber.Ctx) error {
	if err := c.categoryService.DeleteCategory(ctx.RequestCtx(), middlewares.UserID(ctx), ctx.Params("categoryID")); err != nil {
		return mapDomainError(err)
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
