package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"path/filepath"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gorilla/mux"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atmin009/tutor-admin/pkg/auth"
	"github.com/atmin009/tutor-admin/pkg/config"
	"github.com/atmin009/tutor-admin/pkg/course"
	courseApi "github.com/atmin009/tutor-admin/pkg/course/api"
	"github.com/atmin009/tutor-admin/pkg/coupon"
	couponApi "github.com/atmin009/tutor-admin/pkg/coupon/api"
	"github.com/atmin009/tutor-admin/pkg/logger"
	"github.com/atmin009/tutor-admin/pkg/middleware"
	"github.com/atmin009/tutor-admin/pkg/order"
	orderApi "github.com/atmin009/tutor-admin/pkg/order/api"
	"github.com/atmin009/tutor-admin/pkg/platform"
	"github.com/atmin009/tutor-admin/pkg/session"
	"github.com/atmin009/tutor-admin/pkg/stats"
	statsApi "github.com/atmin009/tutor-admin/pkg/stats/api"
	"github.com/atmin009/tutor-admin/pkg/teacher"
	teacherApi "github.com/atmin009/tutor-admin/pkg/teacher/api"
	"github.com/atmin009/tutor-admin/pkg/upload"
	"github.com/atmin009/tutor-admin/pkg/user"
	userApi "github.com/atmin009/tutor-admin/pkg/user/api"
)

func main() {
	cfg := config.Parse()
	lg := logger.Run(cfg.LogLevel)

	db, err := sql.Open("pgx", cfg.DatabaseURI)
	if err != nil {
		log.Printf("Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("unable to reach PostgreSQL: %v", err)
	}

	sessionRepo := session.NewSessionRepo(db)
	sessionManager := session.NewManager(cfg.SecretKey, sessionRepo)

	platformClient, err := platform.NewClient(`http://`+cfg.PlatformAddress,
		session.ContextTokenSource{}, session.NewLogoutObserver(sessionManager))
	if err != nil {
		log.Fatalf("unable to create platform client: %v", err)
	}

	authHandler := auth.NewHandler(auth.NewService(platformClient, sessionManager))
	userHandler := userApi.NewUserHandler(user.NewService(platformClient))
	teacherHandler := teacherApi.NewTeacherHandler(teacher.NewService(platformClient))
	courseHandler := courseApi.NewCourseHandler(course.NewService(platformClient))
	couponHandler := couponApi.NewCouponHandler(coupon.NewService(platformClient))
	orderHandler := orderApi.NewOrderHandler(order.NewService(platformClient))
	statsHandler := statsApi.NewStatsHandler(stats.NewService(platformClient))

	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	// Auth
	api.HandleFunc("/auth/login", authHandler.LogIn).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.LogOut).Methods("POST")
	api.HandleFunc("/auth/me", authHandler.Me).Methods("GET")

	// Stats
	api.HandleFunc("/stats/overview", statsHandler.Overview).Methods("GET")
	api.HandleFunc("/stats/export", statsHandler.Export).Methods("GET")

	// Students
	api.HandleFunc("/users", userHandler.List).Methods("GET")
	api.HandleFunc("/users/{id}", userHandler.Get).Methods("GET")
	api.HandleFunc("/users/{id}/status", userHandler.UpdateStatus).Methods("PUT")
	api.HandleFunc("/users/{id}", userHandler.Delete).Methods("DELETE")

	// Teachers
	api.HandleFunc("/teachers", teacherHandler.List).Methods("GET")
	api.HandleFunc("/teachers", teacherHandler.Create).Methods("POST")
	api.HandleFunc("/teachers/{id}", teacherHandler.Get).Methods("GET")
	api.HandleFunc("/teachers/{id}", teacherHandler.Update).Methods("PUT")
	api.HandleFunc("/teachers/{id}", teacherHandler.Delete).Methods("DELETE")

	// Courses and curriculum
	api.HandleFunc("/courses", courseHandler.List).Methods("GET")
	api.HandleFunc("/courses", courseHandler.Create).Methods("POST")
	api.HandleFunc("/courses/{id}", courseHandler.Get).Methods("GET")
	api.HandleFunc("/courses/{id}", courseHandler.Update).Methods("PUT")
	api.HandleFunc("/courses/{id}", courseHandler.Delete).Methods("DELETE")
	api.HandleFunc("/courses/{id}/sections", courseHandler.Sections).Methods("GET")
	api.HandleFunc("/courses/{id}/sections", courseHandler.CreateSection).Methods("POST")
	api.HandleFunc("/sections/{sectionId}", courseHandler.UpdateSection).Methods("PUT")
	api.HandleFunc("/sections/{sectionId}", courseHandler.DeleteSection).Methods("DELETE")
	api.HandleFunc("/sections/{sectionId}/lessons", courseHandler.CreateLesson).Methods("POST")
	api.HandleFunc("/lessons/{lessonId}", courseHandler.UpdateLesson).Methods("PUT")
	api.HandleFunc("/lessons/{lessonId}", courseHandler.DeleteLesson).Methods("DELETE")

	// Coupons
	api.HandleFunc("/coupons", couponHandler.List).Methods("GET")
	api.HandleFunc("/coupons", couponHandler.Create).Methods("POST")
	api.HandleFunc("/coupons/code", couponHandler.GenerateCode).Methods("POST")
	api.HandleFunc("/coupons/{id}", couponHandler.Update).Methods("PUT")
	api.HandleFunc("/coupons/{id}", couponHandler.Delete).Methods("DELETE")

	// Orders
	api.HandleFunc("/orders", orderHandler.List).Methods("GET")
	api.HandleFunc("/orders/{id}", orderHandler.Get).Methods("GET")

	// Uploads go straight to S3; the dashboard saves the returned URL on
	// the course afterwards.
	if cfg.S3Bucket != `` {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(cfg.S3Region))
		if err != nil {
			log.Fatalf("unable to load AWS config: %v", err)
		}
		store := upload.NewS3Store(s3.NewFromConfig(awsCfg), cfg.S3Bucket, cfg.S3Region, cfg.S3Prefix)
		api.HandleFunc("/uploads", upload.NewHandler(store).Upload).Methods("POST")
	}

	guard := middleware.NewAuthMiddleware(sessionManager, map[string]struct{}{
		"/api/auth/login": {},
	})
	api.Use(guard.Middleware)

	logMiddleware := middleware.NewLoggingMiddleware(lg)
	r.Use(logMiddleware.SetupTracing)
	r.Use(logMiddleware.SetupLogging)
	r.Use(logMiddleware.AccessLog)

	metrics := middleware.NewMetricsMiddleware(prometheus.DefaultRegisterer)
	r.Use(metrics.Collect)
	r.Handle("/metrics", promhttp.Handler())

	// The dashboard SPA itself; anonymous navigations land on /login.
	spa := spaHandler{staticPath: cfg.StaticDir, indexPath: "index.html"}
	r.PathPrefix("/").Handler(guard.GuardPage(spa))

	log.Printf("Serving at http://%s/", cfg.RunAddress)
	log.Fatalln(http.ListenAndServe(cfg.RunAddress, r))
}

// spaHandler serves the built dashboard assets, falling back to index.html
// so client-side routes resolve on a full page load.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := filepath.Join(h.staticPath, filepath.Clean(r.URL.Path))

	fi, err := os.Stat(p)
	if os.IsNotExist(err) || (err == nil && fi.IsDir()) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
}
