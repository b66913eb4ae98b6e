package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"society/internal/domain"
	"society/internal/middleware"
	"society/internal/money"
	"society/internal/storage"
)

type expenseRequest struct {
	ProgramID   string `json:"program_id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	ExpenseDate string `json:"expense_date"`
	InvoiceURL  string `json:"invoice_url"`
}

func (req expenseRequest) toExpense() (*domain.Expense, error) {
	e := &domain.Expense{
		ProgramID:   strings.TrimSpace(req.ProgramID),
		Description: strings.TrimSpace(req.Description),
		InvoiceURL:  strings.TrimSpace(req.InvoiceURL),
	}
	if e.ProgramID == "" {
		return nil, invalidf("program_id is required")
	}
	if e.Description == "" {
		return nil, invalidf("description is required")
	}
	amount, ok, err := money.Parse(req.Amount)
	if err != nil || !ok || !amount.IsPositive() {
		return nil, invalidf("amount must be greater than zero")
	}
	e.Amount = amount
	date, err := time.Parse(dateLayout, strings.TrimSpace(req.ExpenseDate))
	if err != nil {
		return nil, invalidf("expense_date must be YYYY-MM-DD")
	}
	e.ExpenseDate = date
	return e, nil
}

// ListExpenses serves expenses newest first, optionally of one program.
func (a *App) ListExpenses(w http.ResponseWriter, r *http.Request) {
	programID, ok := a.optionalID(w, r.URL.Query().Get("program_id"), "program_id")
	if !ok {
		return
	}
	items, err := a.Expenses.List(r.Context(), programID)
	if err != nil {
		a.fail(w, r, err, "load expenses")
		return
	}
	tag := middleware.TagFromContext(r.Context())
	total := decimal.Zero
	out := make([]expenseDTO, 0, len(items))
	for _, e := range items {
		total = total.Add(e.Amount)
		out = append(out, newExpenseDTO(e, tag))
	}
	a.json(w, http.StatusOK, map[string]any{"items": out, "total": newAmount(total, tag)})
}

func (a *App) AdminGetExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	e, err := a.Expenses.Get(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "load expense")
		return
	}
	a.json(w, http.StatusOK, newExpenseDTO(*e, middleware.TagFromContext(r.Context())))
}

func (a *App) AdminCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if !a.decode(w, r, &req) {
		return
	}
	e, err := req.toExpense()
	if err != nil {
		a.fail(w, r, err, "create expense")
		return
	}
	if _, ok := a.optionalID(w, e.ProgramID, "program_id"); !ok {
		return
	}
	if err := a.Expenses.Create(r.Context(), e); err != nil {
		a.fail(w, r, err, "create expense")
		return
	}
	a.json(w, http.StatusCreated, newExpenseDTO(*e, middleware.TagFromContext(r.Context())))
}

func (a *App) AdminUpdateExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	var req expenseRequest
	if !a.decode(w, r, &req) {
		return
	}
	e, err := req.toExpense()
	if err != nil {
		a.fail(w, r, err, "update expense")
		return
	}
	if _, ok := a.optionalID(w, e.ProgramID, "program_id"); !ok {
		return
	}
	prev, err := a.Expenses.Get(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "update expense")
		return
	}
	e.ID = id
	if err := a.Expenses.Update(r.Context(), e); err != nil {
		a.fail(w, r, err, "update expense")
		return
	}
	if prev.InvoiceURL != "" && prev.InvoiceURL != e.InvoiceURL {
		a.removeObject(r, storage.BucketInvoices, prev.InvoiceURL)
	}
	a.json(w, http.StatusOK, newExpenseDTO(*e, middleware.TagFromContext(r.Context())))
}

func (a *App) AdminDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	e, err := a.Expenses.Get(r.Context(), id)
	if err != nil {
		a.fail(w, r, err, "delete expense")
		return
	}
	if err := a.Expenses.Delete(r.Context(), id); err != nil {
		a.fail(w, r, err, "delete expense")
		return
	}
	if e.InvoiceURL != "" {
		a.removeObject(r, storage.BucketInvoices, e.InvoiceURL)
	}
	w.WriteHeader(http.StatusNoContent)
}

// AdminUploadInvoice stores an invoice scan and returns its URL for use in an
// expense create or update.
func (a *App) AdminUploadInvoice(w http.ResponseWriter, r *http.Request) {
	upload, ok := a.readUpload(w, r, "file")
	if !ok {
		return
	}
	url, err := a.Store.Upload(r.Context(), storage.BucketInvoices, upload.filename, upload.data)
	if err != nil {
		a.fail(w, r, err, "upload invoice")
		return
	}
	a.json(w, http.StatusCreated, map[string]string{"url": url})
}

func (a *App) removeObject(r *http.Request, bucket, url string) {
	if err := a.Store.Delete(r.Context(), bucket, url); err != nil {
		a.Logger.Warn().Err(err).Str("bucket", bucket).Str("url", url).Msg("remove stored object")
	}
}
