package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	restful "github.com/emicklei/go-restful/v3"
	"github.com/nats-io/nats.go"

	"github.com/confcloud/confhub/config"
	announcementapi "github.com/confcloud/confhub/internal/announcement/api"
	announcementservice "github.com/confcloud/confhub/internal/announcement/service"
	"github.com/confcloud/confhub/internal/cache"
	"github.com/confcloud/confhub/internal/common"
	conferenceapi "github.com/confcloud/confhub/internal/conference/api"
	conferenceservice "github.com/confcloud/confhub/internal/conference/service"
	"github.com/confcloud/confhub/internal/cron"
	"github.com/confcloud/confhub/internal/format"
	"github.com/confcloud/confhub/internal/mailer"
	profileapi "github.com/confcloud/confhub/internal/profile/api"
	profileservice "github.com/confcloud/confhub/internal/profile/service"
	registrationapi "github.com/confcloud/confhub/internal/registration/api"
	registrationservice "github.com/confcloud/confhub/internal/registration/service"
	sessionapi "github.com/confcloud/confhub/internal/session/api"
	sessionservice "github.com/confcloud/confhub/internal/session/service"
	"github.com/confcloud/confhub/internal/store"
	"github.com/confcloud/confhub/internal/tasks"
	"github.com/confcloud/confhub/internal/version"
	wishlistapi "github.com/confcloud/confhub/internal/wishlist/api"
	wishlistservice "github.com/confcloud/confhub/internal/wishlist/service"
	"github.com/confcloud/confhub/pkg/logger"
)

func main() {
	log := logger.New()

	defer func() {
		if r := recover(); r != nil {
			os.Exit(1)
		}
	}()

	// Open the store
	db, err := store.Open(config.GetStorePath())
	if err != nil {
		log.Fatal("Failed to open store: %v", err)
	}
	defer db.Close()

	// Connect the cache, falling back to the in-process cache when Redis is
	// not reachable
	var appCache cache.Cache
	redisCache := cache.NewRedis(config.GetRedisAddr(), config.GetRedisPassword(), config.GetRedisDB())
	defer redisCache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisCache.Ping(pingCtx); err != nil {
		log.Warn("Redis not reachable at %s, using in-process cache: %v", config.GetRedisAddr(), err)
		appCache = cache.NewMemory()
	} else {
		appCache = redisCache
	}
	cancel()

	// Connect NATS for background tasks
	nc, err := nats.Connect(config.GetNATSURL())
	if err != nil {
		log.Fatal("Failed to connect to NATS at %s: %v", config.GetNATSURL(), err)
	}
	defer nc.Close()

	publisher := tasks.NewPublisher(nc)

	// Start the confirmation mailer
	var sender mailer.Sender
	if addr := config.GetSMTPAddr(); addr != "" {
		sender = &mailer.SMTPSender{Addr: addr, From: config.GetMailFrom()}
	} else {
		log.Info("No SMTP server configured, outgoing mail will be logged")
		sender = &mailer.LogSender{Log: log}
	}

	sub, err := mailer.New(sender, log).Start(nc)
	if err != nil {
		log.Fatal("Failed to start mailer: %v", err)
	}
	defer sub.Unsubscribe()

	// Initialize services
	profiles := profileservice.New(db)
	conferences := conferenceservice.New(db, profiles, publisher, log)
	sessions := sessionservice.New(db, profiles, appCache, log)
	wishlists := wishlistservice.New(db, profiles)
	registrations := registrationservice.New(db, profiles)
	announcements := announcementservice.New(db, appCache, log)

	// Start the announcement cron job
	cronManager := cron.NewManager(log, announcements, config.GetAnnouncementSchedule())
	cronManager.Start()
	defer cronManager.Stop()

	// Create REST API container
	container := restful.NewContainer()

	// Create WebService
	ws := new(restful.WebService)
	ws.Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Add version route
	ws.Route(ws.GET("/version").To(getVersion).
		Doc("get server version information").
		Returns(200, "OK", map[string]string{}))

	// Add routes
	profileapi.RegisterRoutes(ws, profileapi.NewProfileHandler(profiles))
	registrationapi.RegisterRoutes(ws, registrationapi.NewRegistrationHandler(registrations))
	conferenceapi.RegisterRoutes(ws, conferenceapi.NewConferenceHandler(conferences))
	sessionapi.RegisterRoutes(ws, sessionapi.NewSessionHandler(sessions))
	wishlistapi.RegisterRoutes(ws, wishlistapi.NewWishlistHandler(wishlists))
	announcementapi.RegisterRoutes(ws, announcementapi.NewAnnouncementHandler(announcements))

	container.Add(ws)

	// Add CORS filter
	cors := restful.CrossOriginResourceSharing{
		AllowedHeaders: []string{"Content-Type", "Accept", "X-User-Email", "X-User-Name"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedDomains: []string{"*"},
	}
	container.Filter(cors.Filter)

	// Add request logging filter
	container.Filter(func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		log := logger.New()

		// Print request line with query parameters
		url := req.Request.URL.Path
		if req.Request.URL.RawQuery != "" {
			url += "?" + req.Request.URL.RawQuery
		}
		log.Info("%s %s %s", req.Request.Method, url, req.Request.Proto)

		// Print headers in debug mode
		if log.IsDebugEnabled() && len(req.Request.Header) > 0 {
			headers := make([]string, 0, len(req.Request.Header))
			for name, values := range req.Request.Header {
				headers = append(headers, fmt.Sprintf("%s: %s", name, values[0]))
			}
			log.Debug("Headers: %s", strings.Join(headers, ", "))
		}

		log.Debug("Request route: %s", req.SelectedRoutePath())
		log.Debug("Request parameters: %v", req.PathParameters())

		// Process the request
		chain.ProcessFilter(req, resp)

		// Log response status
		log.Debug("Response status: %d", resp.StatusCode())
	})

	// Get server port from configuration
	port := config.GetServerPort()

	// Get all local IPs
	ips := common.GetLocalIPs()
	log.Info("Server will listen on port %d", port)
	log.Info("Accessible URLs:")
	for _, ip := range ips {
		log.Info("  http://%s:%d", ip, port)
	}

	// Log API endpoints using WebService route information
	endpoints := make([]format.APIEndpoint, 0, len(ws.Routes()))
	for _, route := range ws.Routes() {
		endpoints = append(endpoints, format.APIEndpoint{
			Method:      route.Method,
			Path:        route.Path,
			Description: route.Doc,
		})
	}
	format.LogAPIEndpoints(log, endpoints)

	server := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: container}
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server failed: %v", err)
	}
}

// getVersion returns server build and runtime information
func getVersion(req *restful.Request, resp *restful.Response) {
	resp.WriteEntity(version.ServerInfo())
}
