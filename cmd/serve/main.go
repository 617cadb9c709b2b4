package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"classroom-sync/internal/api"
	"classroom-sync/internal/auth"
	"classroom-sync/internal/cache"
	"classroom-sync/internal/config"
	"classroom-sync/internal/domain"
	"classroom-sync/internal/providers/classroom"
)

func main() {
	cfg := config.Load()

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	httpClient, err := auth.Client(ctx, auth.OAuthConfig(cfg.GoogleClientID, cfg.GoogleClientSecret), cfg.TokenFile)
	cancel()
	if err != nil {
		log.Fatalf("auth error: %v (run the login tool first)", err)
	}
	provider := classroom.Provider{C: classroom.New(cfg.ClassroomBaseURL, httpClient)}

	policies, err := domain.LoadPolicies(cfg.PoliciesFile)
	if err != nil {
		log.Fatal(err)
	}

	server := api.NewServer(provider, cache.New(cfg.CacheTTL), policies)

	// The dashboard frontend runs on its own origin, so the whole API goes
	// through a CORS wrapper.
	c := cors.New(cors.Options{
		AllowedOrigins:   splitCSV(cfg.AllowedOrigins),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	handler := c.Handler(server.Routes())

	log.Printf("listening on :%s", cfg.ServerPort)
	if err := http.ListenAndServe(":"+cfg.ServerPort, handler); err != nil {
		log.Fatal(err)
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
