package httpapi

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"society/internal/http/handlers"
	"society/internal/middleware"
)

// Options configures the router beyond the handler container.
type Options struct {
	Logger         zerolog.Logger
	JWTSecret      string
	AllowedOrigins []string
	DefaultLocale  string
	CountryLookup  middleware.CountryLookup
	AdminLookup    middleware.AdminLookup
	RateLimit      int
	StaticDir      string
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)

	limited := middleware.RateLimit(opts.RateLimit, time.Minute)
	authed := middleware.AuthJWT(opts.JWTSecret)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/openapi.json", app.OpenAPIJSON)
		r.Get("/docs", app.OpenAPIDocs)

		r.Get("/programs", app.ListPrograms)
		r.Get("/programs/{id}", app.GetProgram)
		r.Get("/programs/{id}/categories", app.ListProgramCategories)
		r.Get("/categories/{id}/goods-items", app.ListCategoryGoods)

		r.With(limited).Post("/donations", app.SubmitDonation)
		r.Get("/donations/history", app.DonationHistory)
		r.Get("/expenses", app.ListExpenses)
		r.Get("/team", app.TeamChart)

		r.With(limited).Post("/auth/login", app.Login)
		r.With(authed).Get("/me", app.Me)

		r.Route("/admin", func(r chi.Router) {
			r.Use(authed, middleware.RequireAdmin(opts.AdminLookup, opts.Logger))

			r.Get("/dashboard", app.AdminDashboard)

			r.Get("/programs", app.AdminListPrograms)
			r.Post("/programs", app.AdminCreateProgram)
			r.Get("/programs/{id}", app.AdminGetProgram)
			r.Put("/programs/{id}", app.AdminUpdateProgram)
			r.Delete("/programs/{id}", app.AdminDeleteProgram)
			r.Post("/programs/{id}/images", app.AdminUploadProgramImage)
			r.Delete("/program-images/{id}", app.AdminDeleteProgramImage)

			r.Get("/categories", app.AdminListCategories)
			r.Get("/programs/{id}/categories", app.ListProgramCategories)
			r.Post("/programs/{id}/categories", app.AdminCreateCategory)
			r.Delete("/categories/{id}", app.AdminDeleteCategory)

			r.Get("/goods-items", app.AdminListGoodsItems)
			r.Post("/goods-items", app.AdminCreateGoodsItem)
			r.Put("/goods-items/{id}", app.AdminUpdateGoodsItem)
			r.Delete("/goods-items/{id}", app.AdminDeleteGoodsItem)

			r.Get("/programs/{id}/requirements", app.AdminListRequirements)
			r.Post("/programs/{id}/requirements", app.AdminCreateRequirement)
			r.Delete("/requirements/{id}", app.AdminDeleteRequirement)

			r.Get("/donations", app.AdminListDonations)
			r.Patch("/donations/{id}/status", app.AdminSetDonationStatus)

			r.Get("/expenses", app.ListExpenses)
			r.Post("/expenses", app.AdminCreateExpense)
			r.Post("/expenses/invoice", app.AdminUploadInvoice)
			r.Get("/expenses/{id}", app.AdminGetExpense)
			r.Put("/expenses/{id}", app.AdminUpdateExpense)
			r.Delete("/expenses/{id}", app.AdminDeleteExpense)

			r.Get("/team", app.AdminListTeam)
			r.Post("/team", app.AdminCreateTeamMember)
			r.Get("/team/positions", app.AdminTeamPositions)
			r.Post("/team/photo", app.AdminUploadTeamPhoto)
			r.Put("/team/{id}", app.AdminUpdateTeamMember)
			r.Delete("/team/{id}", app.AdminDeleteTeamMember)
		})
	})

	if opts.StaticDir != "" {
		static := http.StripPrefix("/static/", http.FileServer(filesOnly{http.Dir(opts.StaticDir)}))
		r.Get("/static/*", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			static.ServeHTTP(w, r)
		})
	}

	return r
}

// filesOnly hides directory listings of the static tree.
type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
