package main

import (
	auth "Stratum/internal/auth"
	aashto "Stratum/internal/calc/aashto"
	bearing "Stratum/internal/calc/bearing"
	classify "Stratum/internal/calc/classify"
	batch "Stratum/internal/calc/premium/batch"
	importer "Stratum/internal/calc/premium/importer"
	recommend "Stratum/internal/calc/premium/recommend"
	sizing "Stratum/internal/calc/premium/sizing"
	report "Stratum/internal/calc/report"
	spt "Stratum/internal/calc/spt"
	uscs "Stratum/internal/calc/uscs"
	profile "Stratum/internal/profile"
	repo "Stratum/internal/repo"
	"context"
	"database/sql"

	"encoding/json"
	"io/fs"
	"log/slog"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

// logRequests logs each request's method, URI, address, and duration.
func logRequests(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Info(
				"request",
				"method", r.Method,
				"uri", r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"duration", time.Since(start),
			)
		})
	}
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	// Load TOKEN_KEY from environment
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	classifyH := &classify.Handler{}

	// Query-string classification for spreadsheet clients. No session, the
	// IP limiter still applies.
	api.HandleFunc("/classify", classifyH.Classify).Methods("GET")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")

	uscsH := &uscs.Handler{}
	aashtoH := &aashto.Handler{}
	bearingH := &bearing.Handler{}
	sptH := &spt.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	sizingH := &sizing.Handler{}
	recommendH := &recommend.Handler{}

	secureApi.HandleFunc("/tools/uscs/calc", uscsH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/aashto/calc", aashtoH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/classify/calc", classifyH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/bearing/calc", bearingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/spt/calc", sptH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/premium/batch/uscs", batchH.USCS).Methods("POST")
	secureApi.HandleFunc("/premium/batch/aashto", batchH.AASHTO).Methods("POST")
	secureApi.HandleFunc("/premium/import/samples", importerH.Samples).Methods("POST")
	secureApi.HandleFunc("/premium/sizing/footing", sizingH.Footing).Methods("POST")
	secureApi.HandleFunc("/premium/recommend/state", recommendH.State).Methods("POST")

	secureApi.HandleFunc("/docs/list", func(w http.ResponseWriter, r *http.Request) {
		type Doc struct {
			Name string `json:"name"`
			Path string `json:"path"`
		}
		var docs []Doc
		fs.WalkDir(os.DirFS("./docs"), ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			docs = append(docs, Doc{Name: d.Name(), Path: path})
			return nil
		})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(docs)
	}).Methods("GET")

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	profileFileServer := http.FileServer(http.Dir("./static/profile"))
	mux.Handle("/profile/{id:[0-9]+}", authEnv.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./static/profile/index.html")
	})))
	mux.PathPrefix("/profile/").
		Handler(authEnv.AuthMiddleware(http.StripPrefix("/profile", profileFileServer)))
	mux.PathPrefix("/docs/").
		Handler(authEnv.AuthMiddleware(http.StripPrefix("/docs", http.FileServer(http.Dir("./docs")))))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)

}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db := auth.InitDB()
	defer db.Close()
	router := mux.NewRouter()
	router.Use(logRequests(logger))
	HandleList(router, db)
	handler := CORS(router)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":443"
	}

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	logger.Info("starting server", "addr", addr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	logger.Info("server stopped")

	wg.Wait()
}
