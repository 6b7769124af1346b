package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/httprate"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	config "github.com/avvvet/signin-register/configs"
	mongodb "github.com/avvvet/signin-register/internal/db"
	natscli "github.com/avvvet/signin-register/internal/nats"
	"github.com/avvvet/signin-register/internal/registersvc/broker"
	svcconfig "github.com/avvvet/signin-register/internal/registersvc/config"
	"github.com/avvvet/signin-register/internal/registersvc/db"
	"github.com/avvvet/signin-register/internal/registersvc/handlers"
	"github.com/avvvet/signin-register/internal/registersvc/service"
	"github.com/avvvet/signin-register/internal/registersvc/store"
	"github.com/avvvet/signin-register/internal/registersvc/store/memstore"
	"github.com/avvvet/signin-register/internal/registersvc/store/mongostore"
	"github.com/avvvet/signin-register/internal/registersvc/store/pgstore"
	"github.com/avvvet/signin-register/internal/telemetry"
)

const SERVICE_NAME = "register"

var instanceId string

func init() {
	config.LoadEnv(SERVICE_NAME)
	instanceId = config.CreateUniqueInstance(SERVICE_NAME)
}

func main() {
	cfg, err := svcconfig.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	config.Logging(SERVICE_NAME+"_service", cfg.LogDir, cfg.LogLevel)

	shutdownTelemetry := telemetry.Setup(SERVICE_NAME + "-service")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	visitorStore, contractorStore, closeStore := openStores(cfg)
	defer closeStore()

	var opts []service.Option
	opts = append(opts, service.WithStrictValidation(cfg.StrictValidation))

	// NATS is optional, without it no events are published
	if cfg.NatsURL != "" {
		n, err := natscli.Connect(cfg.NatsURL, cfg.NatsToken, SERVICE_NAME+"-"+instanceId)
		if err != nil {
			log.Errorf("Error: unable to connect to NATS server %v", err)
			os.Exit(1)
		}
		defer n.Conn.Close()
		log.Printf("NATS connection established successfully %s", n.Url)

		opts = append(opts, service.WithEvents(broker.NewBroker(n.Conn, instanceId)))
	}

	visitorService := service.NewVisitorService(visitorStore, opts...)
	contractorService := service.NewContractorService(contractorStore, opts...)

	// Setup router
	r := chi.NewRouter()
	c := config.CORS(cfg.CORSOrigins)

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(c.Handler)

	// to protect the service api from any over requests
	if cfg.RateLimit > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimit, 1*time.Minute))
	}

	// Init handlers and routes
	h := handlers.NewHandler(visitorService, contractorService, cfg.Port)
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelhttp.NewHandler(r, SERVICE_NAME+"-service"),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s (store: %s)", SERVICE_NAME, server.Addr, cfg.StoreDriver)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
		return
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}

// openStores connects the configured backend and returns its stores and a
// close func.
func openStores(cfg svcconfig.Config) (store.VisitorStore, store.ContractorStore, func()) {
	ctx := context.Background()

	switch cfg.StoreDriver {
	case svcconfig.DriverPostgres:
		pool, err := db.Connect(ctx, cfg.PostgresURL)
		if err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		log.Printf("pg connection established successfully")

		if err := pgstore.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("Failed to prepare schema: %v", err)
		}
		return pgstore.NewVisitorStore(pool), pgstore.NewContractorStore(pool), db.ClosePool

	case svcconfig.DriverMemory:
		log.Warn("using in-memory store, records are lost on restart")
		st := memstore.New()
		return st, st, func() {}

	default:
		database, err := mongodb.ConnectToDB(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}

		for _, coll := range []string{mongostore.VisitorCollection, mongostore.ContractorCollection} {
			if err := mongodb.CreateDateIndex(ctx, database, coll); err != nil {
				log.Warnf("index setup: %v", err)
			}
		}

		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			mongodb.Disconnect(ctx, database)
		}
		return mongostore.NewVisitorStore(database), mongostore.NewContractorStore(database), closeFn
	}
}
