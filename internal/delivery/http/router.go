package http

import (
	"net/http"

	"hello-doctors/internal/delivery/http/handler"
	"hello-doctors/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	doctorHandler        *handler.DoctorHandler
	doctorAdminHandler   *handler.DoctorAdminHandler
	cityHandler          *handler.CityHandler
	specialtyHandler     *handler.SpecialtyHandler
	advertisementHandler *handler.AdvertisementHandler
	siteSettingHandler   *handler.SiteSettingHandler
	userHandler          *handler.UserHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	publicDir            string
	uploadDir            string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	doctorAdminHandler *handler.DoctorAdminHandler,
	cityHandler *handler.CityHandler,
	specialtyHandler *handler.SpecialtyHandler,
	advertisementHandler *handler.AdvertisementHandler,
	siteSettingHandler *handler.SiteSettingHandler,
	userHandler *handler.UserHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	publicDir string,
	uploadDir string,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		doctorHandler:        doctorHandler,
		doctorAdminHandler:   doctorAdminHandler,
		cityHandler:          cityHandler,
		specialtyHandler:     specialtyHandler,
		advertisementHandler: advertisementHandler,
		siteSettingHandler:   siteSettingHandler,
		userHandler:          userHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		publicDir:            publicDir,
		uploadDir:            uploadDir,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register-doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public directory routes
	api.HandleFunc("/search", r.doctorHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}", r.doctorHandler.GetDetail).Methods(http.MethodGet)
	api.HandleFunc("/cities", r.cityHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/cities/{id:[0-9]+}", r.cityHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.specialtyHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/specialties/{id:[0-9]+}", r.specialtyHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/advertisements", r.advertisementHandler.GetLive).Methods(http.MethodGet)
	api.HandleFunc("/advertisements/{id:[0-9]+}/click", r.advertisementHandler.RecordClick).Methods(http.MethodPost)
	api.HandleFunc("/settings", r.siteSettingHandler.Get).Methods(http.MethodGet)

	// Doctor self-service routes
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/profile", r.doctorAdminHandler.GetProfile).Methods(http.MethodGet)
	doctor.HandleFunc("/profile", r.doctorAdminHandler.UpdateProfile).Methods(http.MethodPut)

	// Admin routes (protected - super admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireSuperAdmin)

	// Doctor management
	admin.HandleFunc("/doctors", r.doctorAdminHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/doctors", r.doctorAdminHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id:[0-9]+}", r.doctorAdminHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id:[0-9]+}", r.doctorAdminHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id:[0-9]+}", r.doctorAdminHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/doctors/{id:[0-9]+}/toggle-verification", r.doctorAdminHandler.ToggleVerification).Methods(http.MethodPost)
	admin.HandleFunc("/doctors/{id:[0-9]+}/toggle-active", r.doctorAdminHandler.ToggleActive).Methods(http.MethodPost)

	// City management
	admin.HandleFunc("/cities", r.cityHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/cities/{id:[0-9]+}", r.cityHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/cities/{id:[0-9]+}", r.cityHandler.Delete).Methods(http.MethodDelete)

	// Specialty management
	admin.HandleFunc("/specialties", r.specialtyHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/specialties/{id:[0-9]+}", r.specialtyHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/specialties/{id:[0-9]+}", r.specialtyHandler.Delete).Methods(http.MethodDelete)

	// Advertisement management
	admin.HandleFunc("/advertisements", r.advertisementHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/advertisements", r.advertisementHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/advertisements/{id:[0-9]+}", r.advertisementHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/advertisements/{id:[0-9]+}", r.advertisementHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/advertisements/{id:[0-9]+}", r.advertisementHandler.Delete).Methods(http.MethodDelete)

	// Site settings
	admin.HandleFunc("/settings", r.siteSettingHandler.Update).Methods(http.MethodPut)

	// User management
	admin.HandleFunc("/users", r.userHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}", r.userHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/users/{id}", r.userHandler.Delete).Methods(http.MethodDelete)

	// Audit trail
	admin.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)

	// Static assets: site images and uploaded files
	r.router.PathPrefix("/images/").Handler(
		http.StripPrefix("/images/", http.FileServer(http.Dir(r.publicDir))))
	r.router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(r.uploadDir))))

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
