package main

import (
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"travelbrain/internal/adapters/cache"
	"travelbrain/internal/adapters/directions"
	"travelbrain/internal/adapters/geocode"
	"travelbrain/internal/adapters/hubs"
	"travelbrain/internal/api"
	"travelbrain/internal/catalog"
	"travelbrain/internal/config"
	"travelbrain/internal/platform/db"
	"travelbrain/internal/ports"
	"travelbrain/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, GraphHopper, ORS, AirLabs,
// Postgres caches) behind ports, loads the static reference data, and
// starts the HTTP server. Missing reference data or provider credentials
// stop the process here, never a request.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	hubsPath := config.Get("HUBS_PATH", "data/seeds/hubs.json")
	activitiesPath := config.Get("ACTIVITIES_PATH", "data/seeds/activities.json")
	userAgent := config.Get("GEOCODER_USER_AGENT", "travelbrain/1.0")

	// Provider credentials must come from configuration; there are no
	// embedded fallback keys.
	ghKey := os.Getenv("GRAPHHOPPER_API_KEY")
	if strings.TrimSpace(ghKey) == "" {
		log.Fatal("GRAPHHOPPER_API_KEY is required")
	}
	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	hubSet, err := hubs.LoadHubs(hubsPath)
	if err != nil {
		log.Fatal(err)
	}

	activityCatalog, err := catalog.Load(activitiesPath)
	if err != nil {
		log.Fatal(err)
	}

	// Lookup caches are optional: wired only when a database is configured.
	var (
		geocodeCache *cache.SQLGeocodeCache
		routeCache   *cache.SQLRouteCache
	)
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		if err := cache.InitSchema(conn); err != nil {
			log.Fatal(err)
		}

		geocodeCache = cache.NewSQLGeocodeCache(conn)
		routeCache = cache.NewSQLRouteCache(conn)
		log.Println("lookup caches enabled")
	}

	primary, err := directions.NewGraphHopperProvider(ghKey)
	if err != nil {
		log.Fatal(err)
	}
	secondary, err := directions.NewORSProvider(orsKey)
	if err != nil {
		log.Fatal(err)
	}

	var liveHubs ports.NearbyHubLookup
	if airlabsKey := os.Getenv("AIRLABS_API_KEY"); strings.TrimSpace(airlabsKey) != "" {
		lookup, err := hubs.NewAirLabsLookup(airlabsKey)
		if err != nil {
			log.Fatal(err)
		}
		liveHubs = lookup
		log.Println("live hub discovery enabled")
	}

	locator, err := services.NewHubLocator(hubSet, liveHubs)
	if err != nil {
		log.Fatal(err)
	}

	provider := services.NewRouteProvider(primary, secondary, routeCache)
	classifier := services.NewModalityClassifier(services.DefaultClassifierConfig())
	composer := services.NewRouteComposer(provider, locator, classifier)
	resolver := services.NewPlaceResolver(geocode.NewNominatimGeocoder(userAgent), geocodeCache)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	planner := services.NewItineraryPlanner(activityCatalog, rng)

	router := api.NewRouter(composer, resolver, planner)

	// Timeouts are tuned for cold-cache route computation (external API latency).
	log.Printf("Server listening addr=:%s hubs=%d categories=%d", port, len(hubSet), len(activityCatalog.Categories()))
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
