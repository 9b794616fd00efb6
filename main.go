package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/auth"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/budget"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/coalition"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/db"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/districts"
	"github.com/nfmontgomery220/federal-budget-sub001/internal/middleware"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	auth.Init()
	budget.Init()
	coalition.Init()
	districts.Init()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)

	r.Mount("/auth", auth.SetupRoutes())
	r.Mount("/budget", budget.SetupRoutes())
	r.Mount("/coalitions", coalition.SetupRoutes())
	r.Mount("/districts", districts.SetupRoutes())

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
