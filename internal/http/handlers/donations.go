package handlers

import (
	"net/http"
	"strings"

	"society/internal/domain"
	"society/internal/middleware"
	"society/internal/money"
	"society/internal/service"
)

type donationItemRequest struct {
	GoodsItemID string `json:"goods_item_id"`
	Quantity    string `json:"quantity"`
}

type donationRequest struct {
	DonorName    string                `json:"donor_name"`
	DonorAddress string                `json:"donor_address"`
	DonorContact string                `json:"donor_contact"`
	ProgramID    string                `json:"program_id"`
	CategoryID   string                `json:"category_id"`
	DonationType string                `json:"donation_type"`
	Amount       string                `json:"amount"`
	Items        []donationItemRequest `json:"items"`
}

type donationStatusRequest struct {
	Status string `json:"status"`
}

// SubmitDonation records a donor submission as Pending. The donor country is
// taken from the request's resolved country.
func (a *App) SubmitDonation(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if !a.decode(w, r, &req) {
		return
	}
	programID, ok := a.optionalID(w, req.ProgramID, "program_id")
	if !ok {
		return
	}
	categoryID, ok := a.optionalID(w, req.CategoryID, "category_id")
	if !ok {
		return
	}
	in := service.DonationInput{
		DonorName:    req.DonorName,
		DonorAddress: req.DonorAddress,
		DonorContact: req.DonorContact,
		DonorCountry: middleware.CountryFromContext(r.Context()),
		ProgramID:    programID,
		CategoryID:   categoryID,
		Type:         domain.DonationType(strings.ToLower(strings.TrimSpace(req.DonationType))),
		Amount:       req.Amount,
	}
	for _, it := range req.Items {
		itemID, ok := a.optionalID(w, it.GoodsItemID, "goods_item_id")
		if !ok {
			return
		}
		in.Items = append(in.Items, service.DonationItemInput{GoodsItemID: itemID, Quantity: it.Quantity})
	}

	d, err := a.Donations.Submit(r.Context(), in)
	if err != nil {
		a.fail(w, r, err, "submit donation")
		return
	}
	a.Logger.Info().Str("donation_id", d.ID).Str("program_id", d.ProgramID).Str("type", string(d.Type)).Msg("donation submitted")
	a.json(w, http.StatusCreated, newDonationDTO(*d, middleware.TagFromContext(r.Context()), false))
}

// DonationHistory lists Received donations publicly, without donor contact details.
func (a *App) DonationHistory(w http.ResponseWriter, r *http.Request) {
	h, err := a.Donations.History(r.Context())
	if err != nil {
		a.fail(w, r, err, "load donation history")
		return
	}
	tag := middleware.TagFromContext(r.Context())
	out := make([]donationDTO, 0, len(h.Donations))
	for _, d := range h.Donations {
		out = append(out, newDonationDTO(d, tag, false))
	}
	a.json(w, http.StatusOK, map[string]any{
		"items":       out,
		"money_total": newAmount(h.MoneyTotal, tag),
		"goods_count": h.GoodsCount,
		"currency":    money.Currency.String(),
	})
}

func (a *App) AdminListDonations(w http.ResponseWriter, r *http.Request) {
	status := domain.DonationStatus(r.URL.Query().Get("status"))
	items, counts, err := a.Donations.AdminList(r.Context(), status)
	if err != nil {
		a.fail(w, r, err, "load donations")
		return
	}
	tag := middleware.TagFromContext(r.Context())
	out := make([]donationDTO, 0, len(items))
	for _, d := range items {
		out = append(out, newDonationDTO(d, tag, true))
	}
	a.json(w, http.StatusOK, map[string]any{
		"items": out,
		"counts": map[string]int{
			"all":      counts.All,
			"pending":  counts.Pending,
			"received": counts.Received,
		},
	})
}

func (a *App) AdminSetDonationStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := a.idParam(w, r, "id")
	if !ok {
		return
	}
	var req donationStatusRequest
	if !a.decode(w, r, &req) {
		return
	}
	status := domain.DonationStatus(req.Status)
	if err := a.Donations.SetStatus(r.Context(), id, status); err != nil {
		a.fail(w, r, err, "update donation status")
		return
	}
	a.Logger.Info().Str("donation_id", id).Str("status", req.Status).Str("admin_id", a.currentUserID(r)).Msg("donation status changed")
	a.json(w, http.StatusOK, map[string]string{"id": id, "status": string(status)})
}
