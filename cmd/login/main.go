// One-time OAuth bootstrap: opens the Google consent URL, catches the
// redirect on localhost and writes the token file the other tools read.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"classroom-sync/internal/auth"
	"classroom-sync/internal/config"
)

func main() {
	cfg := config.Load()
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		log.Fatal("missing env vars: GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET")
	}

	oc := auth.OAuthConfig(cfg.GoogleClientID, cfg.GoogleClientSecret)

	state := fmt.Sprintf("st-%d", time.Now().UnixNano())
	url := oc.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Printf("Open this URL in your browser:\n\n%s\n\n", url)

	codeCh := make(chan string, 1)
	srv := &http.Server{Addr: ":8085"}
	http.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		}
		fmt.Fprintln(w, "Login complete. You can close this tab.")
		codeCh <- r.URL.Query().Get("code")
	})
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("callback server: %v", err)
		}
	}()

	code := <-codeCh

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)

	tok, err := oc.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("token exchange: %v", err)
	}
	if err := auth.SaveToken(cfg.TokenFile, tok); err != nil {
		log.Fatal(err)
	}
	log.Printf("token saved to %s", cfg.TokenFile)
}
