package handlers

import (
	"net/http"
	"strings"

	"society/internal/domain"
	"society/internal/progress"
)

type categoryRequest struct {
	Name string `json:"name"`
}

type goodsItemRequest struct {
	CategoryID       string `json:"category_id"`
	Name             string `json:"name"`
	RequiredQuantity string `json:"required_quantity"`
}

type requirementRequest struct {
	GoodsItemID      string `json:"goods_item_id"`
	RequiredQuantity string `json:"required_quantity"`
}

// ListProgramCategories serves the donation categories of a program.
func (a *App) ListProgramCategories(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	items, err := a.Catalog.ListCategories(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "load categories")
		return
	}
	out := make([]categoryDTO, 0, len(items))
	for _, c := range items {
		out = append(out, newCategoryDTO(c))
	}
	a.json(w, http.StatusOK, map[string]any{"items": out})
}

// ListCategoryGoods serves the goods items donors can pick in a category.
func (a *App) ListCategoryGoods(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	a.listGoodsItems(w, r, id)
}

// AdminListGoodsItems lists goods items, optionally of one category.
func (a *App) AdminListGoodsItems(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := a.optionalID(w, r.URL.Query().Get("category_id"), "category_id")
	if !ok {
		return
	}
	a.listGoodsItems(w, r, categoryID)
}

func (a *App) listGoodsItems(w http.ResponseWriter, r *http.Request, categoryID string) {
	items, err := a.Catalog.ListGoodsItems(r.Context(), categoryID)
	if err != nil {
		a.fail(w, r, err, "load goods items")
		return
	}
	out := make([]goodsItemDTO, 0, len(items))
	for _, g := range items {
		out = append(out, newGoodsItemDTO(g))
	}
	a.json(w, http.StatusOK, map[string]any{"items": out})
}

// AdminListCategories lists categories of every program with program titles.
func (a *App) AdminListCategories(w http.ResponseWriter, r *http.Request) {
	programID, ok := a.optionalID(w, r.URL.Query().Get("program_id"), "program_id")
	if !ok {
		return
	}
	items, err := a.Catalog.ListCategories(r.Context(), programID)
	if err != nil {
		a.fail(w, r, err, "load categories")
		return
	}
	out := make([]categoryDTO, 0, len(items))
	for _, c := range items {
		out = append(out, newCategoryDTO(c))
	}
	a.json(w, http.StatusOK, map[string]any{"items": out})
}

func (a *App) AdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	programID, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	var req categoryRequest
	if !a.decode(w, r, &req) {
		return
	}
	c := &domain.DonationCategory{ProgramID: programID, Name: strings.TrimSpace(req.Name)}
	if c.Name == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name is required")
		return
	}
	if err := a.Catalog.CreateCategory(r.Context(), c); err != nil {
		a.fail(w, r, err, "create category")
		return
	}
	a.json(w, http.StatusCreated, newCategoryDTO(*c))
}

func (a *App) AdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	if err := a.Catalog.DeleteCategory(r.Context(), id); err != nil {
		a.fail(w, r, err, "delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) AdminCreateGoodsItem(w http.ResponseWriter, r *http.Request) {
	var req goodsItemRequest
	if !a.decode(w, r, &req) {
		return
	}
	categoryID, ok := a.optionalID(w, req.CategoryID, "category_id")
	if !ok {
		return
	}
	if categoryID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "category_id is required")
		return
	}
	item := &domain.GoodsItem{CategoryID: categoryID, Name: strings.TrimSpace(req.Name), RequiredQuantity: strings.TrimSpace(req.RequiredQuantity)}
	if err := validateGoodsItem(item); err != nil {
		a.fail(w, r, err, "create goods item")
		return
	}
	if err := a.Catalog.CreateGoodsItem(r.Context(), item); err != nil {
		a.fail(w, r, err, "create goods item")
		return
	}
	a.json(w, http.StatusCreated, newGoodsItemDTO(*item))
}

func (a *App) AdminUpdateGoodsItem(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	var req goodsItemRequest
	if !a.decode(w, r, &req) {
		return
	}
	item := &domain.GoodsItem{ID: id, Name: strings.TrimSpace(req.Name), RequiredQuantity: strings.TrimSpace(req.RequiredQuantity)}
	if err := validateGoodsItem(item); err != nil {
		a.fail(w, r, err, "update goods item")
		return
	}
	if err := a.Catalog.UpdateGoodsItem(r.Context(), item); err != nil {
		a.fail(w, r, err, "update goods item")
		return
	}
	a.json(w, http.StatusOK, newGoodsItemDTO(*item))
}

func (a *App) AdminDeleteGoodsItem(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	if err := a.Catalog.DeleteGoodsItem(r.Context(), id); err != nil {
		a.fail(w, r, err, "delete goods item")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) AdminListRequirements(w http.ResponseWriter, r *http.Request) {
	programID, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	items, err := a.Catalog.ListRequirements(r.Context(), programID)
	if err != nil {
		a.fail(w, r, err, "load requirements")
		return
	}
	out := make([]requirementDTO, 0, len(items))
	for _, it := range items {
		out = append(out, newRequirementDTO(it))
	}
	a.json(w, http.StatusOK, map[string]any{"items": out})
}

// AdminCreateRequirement pins a required quantity of a goods item to a
// program. The quantity must start with a number.
func (a *App) AdminCreateRequirement(w http.ResponseWriter, r *http.Request) {
	programID, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	var req requirementRequest
	if !a.decode(w, r, &req) {
		return
	}
	itemID, ok := a.optionalID(w, req.GoodsItemID, "goods_item_id")
	if !ok {
		return
	}
	if itemID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "goods_item_id is required")
		return
	}
	qty := strings.TrimSpace(req.RequiredQuantity)
	if _, err := progress.ParseQuantity(qty); err != nil {
		a.fail(w, r, invalidf("required_quantity: %v", err), "create requirement")
		return
	}
	rq := &domain.GoodsRequirement{ProgramID: programID, GoodsItemID: itemID, RequiredQuantity: qty}
	if err := a.Catalog.CreateRequirement(r.Context(), rq); err != nil {
		a.fail(w, r, err, "create requirement")
		return
	}
	a.json(w, http.StatusCreated, newRequirementDTO(*rq))
}

func (a *App) AdminDeleteRequirement(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	if err := a.Catalog.DeleteRequirement(r.Context(), id); err != nil {
		a.fail(w, r, err, "delete requirement")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validateGoodsItem requires a name. A required quantity is optional but must
// start with a number when given.
func validateGoodsItem(item *domain.GoodsItem) error {
	if item.Name == "" {
		return invalidf("name is required")
	}
	if item.RequiredQuantity == "" {
		return nil
	}
	if _, err := progress.ParseQuantity(item.RequiredQuantity); err != nil {
		return invalidf("required_quantity: %v", err)
	}
	return nil
}
