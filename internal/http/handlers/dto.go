package handlers

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"society/internal/domain"
	"society/internal/money"
	"society/internal/progress"
	"society/internal/service"
	"society/internal/team"
)

const dateLayout = "2006-01-02"

// amountDTO carries an exact amount plus its display form.
type amountDTO struct {
	Value     string `json:"value"`
	Formatted string `json:"formatted"`
}

func newAmount(d decimal.Decimal, tag language.Tag) amountDTO {
	return amountDTO{Value: d.String(), Formatted: money.Format(d, tag)}
}

func newOptionalAmount(d *decimal.Decimal, tag language.Tag) *amountDTO {
	if d == nil {
		return nil
	}
	a := newAmount(*d, tag)
	return &a
}

type programDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	Location    string     `json:"location"`
	FundingGoal *amountDTO `json:"funding_goal"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newProgramDTO(p domain.Program, tag language.Tag) programDTO {
	return programDTO{
		ID:          p.ID,
		Title:       p.Title,
		Category:    string(p.Category),
		Description: p.Description,
		Date:        p.Date.Format(dateLayout),
		Location:    p.Location,
		FundingGoal: newOptionalAmount(p.FundingGoal, tag),
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type imageDTO struct {
	ID           string `json:"id"`
	ImageURL     string `json:"image_url"`
	DisplayOrder int    `json:"display_order"`
}

func newImageDTO(img *domain.ProgramImage) *imageDTO {
	if img == nil {
		return nil
	}
	return &imageDTO{ID: img.ID, ImageURL: img.ImageURL, DisplayOrder: img.DisplayOrder}
}

func newGalleryDTO(images []domain.ProgramImage) []imageDTO {
	out := make([]imageDTO, 0, len(images))
	for i := range images {
		out = append(out, *newImageDTO(&images[i]))
	}
	return out
}

type fundingDTO struct {
	Goal          *amountDTO `json:"goal"`
	Raised        amountDTO  `json:"raised"`
	Expenses      amountDTO  `json:"expenses"`
	Remaining     *amountDTO `json:"remaining"`
	Percentage    int        `json:"percentage"`
	DonationCount int        `json:"donation_count"`
	GoodsCount    int        `json:"goods_count"`
}

func newFundingDTO(f *service.FundingSummary, tag language.Tag) *fundingDTO {
	if f == nil {
		return nil
	}
	return &fundingDTO{
		Goal:          newOptionalAmount(f.Goal, tag),
		Raised:        newAmount(f.Raised, tag),
		Expenses:      newAmount(f.Expenses, tag),
		Remaining:     newOptionalAmount(f.Remaining, tag),
		Percentage:    f.Percentage,
		DonationCount: f.DonationCount,
		GoodsCount:    f.GoodsCount,
	}
}

type goodsProgressDTO struct {
	ItemID        string `json:"item_id"`
	ItemName      string `json:"item_name"`
	Required      string `json:"required"`
	RequiredValid bool   `json:"required_valid"`
	Unit          string `json:"unit,omitempty"`
	Collected     int64  `json:"collected"`
	Percentage    int    `json:"percentage"`
	Invalid       int    `json:"invalid_contributions"`
}

func newGoodsProgressDTO(items []progress.ItemProgress) []goodsProgressDTO {
	out := make([]goodsProgressDTO, 0, len(items))
	for _, it := range items {
		out = append(out, goodsProgressDTO{
			ItemID:        it.ItemID,
			ItemName:      it.ItemName,
			Required:      it.Required,
			RequiredValid: it.RequiredValid,
			Unit:          it.Unit,
			Collected:     it.Collected,
			Percentage:    it.Percentage,
			Invalid:       it.Invalid,
		})
	}
	return out
}

type programSummaryDTO struct {
	programDTO
	FeatureImage *imageDTO   `json:"feature_image"`
	Funding      *fundingDTO `json:"funding,omitempty"`
}

type programDetailDTO struct {
	programDTO
	FeatureImage *imageDTO          `json:"feature_image"`
	Gallery      []imageDTO         `json:"gallery"`
	Funding      *fundingDTO        `json:"funding,omitempty"`
	Goods        []goodsProgressDTO `json:"goods_progress,omitempty"`
}

func newProgramDetailDTO(d *service.ProgramDetail, tag language.Tag) programDetailDTO {
	return programDetailDTO{
		programDTO:   newProgramDTO(d.Program, tag),
		FeatureImage: newImageDTO(d.FeatureImage),
		Gallery:      newGalleryDTO(d.Gallery),
		Funding:      newFundingDTO(d.Funding, tag),
		Goods:        newGoodsProgressDTO(d.Goods),
	}
}

type categoryDTO struct {
	ID           string    `json:"id"`
	ProgramID    string    `json:"program_id"`
	ProgramTitle string    `json:"program_title,omitempty"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

func newCategoryDTO(c domain.DonationCategory) categoryDTO {
	return categoryDTO{ID: c.ID, ProgramID: c.ProgramID, ProgramTitle: c.ProgramTitle, Name: c.Name, CreatedAt: c.CreatedAt}
}

type goodsItemDTO struct {
	ID               string    `json:"id"`
	CategoryID       string    `json:"category_id"`
	CategoryName     string    `json:"category_name,omitempty"`
	Name             string    `json:"name"`
	RequiredQuantity string    `json:"required_quantity"`
	CreatedAt        time.Time `json:"created_at"`
}

func newGoodsItemDTO(g domain.GoodsItem) goodsItemDTO {
	return goodsItemDTO{
		ID:               g.ID,
		CategoryID:       g.CategoryID,
		CategoryName:     g.CategoryName,
		Name:             g.Name,
		RequiredQuantity: g.RequiredQuantity,
		CreatedAt:        g.CreatedAt,
	}
}

type requirementDTO struct {
	ID               string    `json:"id"`
	ProgramID        string    `json:"program_id"`
	GoodsItemID      string    `json:"goods_item_id"`
	ItemName         string    `json:"item_name"`
	CategoryName     string    `json:"category_name"`
	RequiredQuantity string    `json:"required_quantity"`
	CreatedAt        time.Time `json:"created_at"`
}

func newRequirementDTO(r domain.GoodsRequirement) requirementDTO {
	return requirementDTO{
		ID:               r.ID,
		ProgramID:        r.ProgramID,
		GoodsItemID:      r.GoodsItemID,
		ItemName:         r.ItemName,
		CategoryName:     r.CategoryName,
		RequiredQuantity: r.RequiredQuantity,
		CreatedAt:        r.CreatedAt,
	}
}

type donationItemDTO struct {
	GoodsItemID string `json:"goods_item_id"`
	ItemName    string `json:"item_name"`
	Quantity    string `json:"quantity"`
}

type donationDTO struct {
	ID           string            `json:"id"`
	DonorName    string            `json:"donor_name"`
	DonorAddress string            `json:"donor_address,omitempty"`
	DonorContact string            `json:"donor_contact,omitempty"`
	DonorCountry string            `json:"donor_country,omitempty"`
	ProgramID    string            `json:"program_id"`
	ProgramTitle string            `json:"program_title"`
	CategoryID   *string           `json:"category_id"`
	CategoryName string            `json:"category_name,omitempty"`
	Type         string            `json:"donation_type"`
	Amount       *amountDTO        `json:"amount"`
	Status       string            `json:"status"`
	DonationDate time.Time         `json:"donation_date"`
	Items        []donationItemDTO `json:"items"`
}

// newDonationDTO renders a donation. Contact details are only included for
// admin views.
func newDonationDTO(d domain.Donation, tag language.Tag, withContact bool) donationDTO {
	dto := donationDTO{
		ID:           d.ID,
		DonorName:    d.DonorName,
		ProgramID:    d.ProgramID,
		ProgramTitle: d.ProgramTitle,
		CategoryID:   d.CategoryID,
		CategoryName: d.CategoryName,
		Type:         string(d.Type),
		Amount:       newOptionalAmount(d.Amount, tag),
		Status:       string(d.Status),
		DonationDate: d.DonationDate,
		Items:        make([]donationItemDTO, 0, len(d.Items)),
	}
	if withContact {
		dto.DonorAddress = d.DonorAddress
		dto.DonorContact = d.DonorContact
		dto.DonorCountry = d.DonorCountry
	}
	for _, it := range d.Items {
		dto.Items = append(dto.Items, donationItemDTO{GoodsItemID: it.GoodsItemID, ItemName: it.ItemName, Quantity: it.Quantity})
	}
	return dto
}

type expenseDTO struct {
	ID           string    `json:"id"`
	ProgramID    string    `json:"program_id"`
	ProgramTitle string    `json:"program_title"`
	Description  string    `json:"description"`
	Amount       amountDTO `json:"amount"`
	ExpenseDate  string    `json:"expense_date"`
	InvoiceURL   string    `json:"invoice_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newExpenseDTO(e domain.Expense, tag language.Tag) expenseDTO {
	return expenseDTO{
		ID:           e.ID,
		ProgramID:    e.ProgramID,
		ProgramTitle: e.ProgramTitle,
		Description:  e.Description,
		Amount:       newAmount(e.Amount, tag),
		ExpenseDate:  e.ExpenseDate.Format(dateLayout),
		InvoiceURL:   e.InvoiceURL,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

type teamMemberDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	Year         string `json:"year"`
	DisplayOrder int    `json:"display_order"`
	ImageURL     string `json:"image_url,omitempty"`
}

func newTeamMemberDTO(m domain.TeamMember) teamMemberDTO {
	return teamMemberDTO{ID: m.ID, Name: m.Name, Position: m.Position, Year: m.Year, DisplayOrder: m.DisplayOrder, ImageURL: m.ImageURL}
}

func newTeamMembersDTO(ms []domain.TeamMember) []teamMemberDTO {
	out := make([]teamMemberDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, newTeamMemberDTO(m))
	}
	return out
}

type tierDTO struct {
	Tier    int             `json:"tier"`
	Name    string          `json:"name"`
	Members []teamMemberDTO `json:"members"`
}

type teamChartDTO struct {
	Year       string          `json:"year"`
	Tiers      []tierDTO       `json:"tiers"`
	Unassigned []teamMemberDTO `json:"unassigned"`
}

func newTeamChartDTO(year string, h team.Hierarchy) teamChartDTO {
	dto := teamChartDTO{Year: year, Tiers: make([]tierDTO, 0, len(team.Tiers)), Unassigned: newTeamMembersDTO(h.Unassigned)}
	for _, t := range team.Tiers {
		dto.Tiers = append(dto.Tiers, tierDTO{Tier: int(t), Name: t.String(), Members: newTeamMembersDTO(h.Level(t))})
	}
	return dto
}

type userDTO struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	IsAdmin  bool   `json:"is_admin"`
}

func newUserDTO(u *domain.User) userDTO {
	return userDTO{ID: u.ID, Email: u.Email, FullName: u.FullName, IsAdmin: u.IsAdmin}
}
