package web

import (
	"crypto/sha256"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"clubsite/internal/adapters/email"
	"clubsite/internal/adapters/http/middleware"
	"clubsite/internal/adapters/http/perf"
	announcementStore "clubsite/internal/adapters/storage/announcement"
	contactStore "clubsite/internal/adapters/storage/contact"
	eventStore "clubsite/internal/adapters/storage/event"
	galleryStore "clubsite/internal/adapters/storage/gallery"
	"clubsite/internal/adapters/storage/media"
	memberStore "clubsite/internal/adapters/storage/member"
	"clubsite/internal/config"
)

// Stores holds all storage dependencies.
type Stores struct {
	MemberStore       memberStore.Store
	EventStore        eventStore.Store
	AnnouncementStore announcementStore.Store
	GalleryStore      galleryStore.Store
	ContactStore      contactStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global media store for uploaded files (set by NewMux)
var mediaStore *media.DiskStore

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// adminPasswordHash is the bcrypt hash of the shared admin password,
// computed once at startup so the plaintext is never kept around.
var adminPasswordHash []byte

// adminEmail receives contact form notifications.
var adminEmail string

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

var emailFromAddress string

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, from, notifyTo string) {
	emailSender = sender
	emailFromAddress = from
	adminEmail = notifyTo
}

// deriveKey stretches the configured secret into a 32-byte key for one
// purpose. Separate labels keep the CSRF and flash keys independent.
func deriveKey(secret, label string) []byte {
	sum := sha256.Sum256([]byte(secret + ":" + label))
	return sum[:]
}

// NewMux wires HTTP handlers for the app.
func NewMux(cfg config.Config, s *Stores, m *media.DiskStore, collector *perf.Collector) http.Handler {
	stores = s
	mediaStore = m
	perfCollector = collector
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = cfg.IsProduction()

	if cfg.IsProduction() && cfg.SecretKey == config.DefaultSecretKey {
		log.Fatal("CLUBSITE_SECRET_KEY must be changed from the default in production")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	adminPasswordHash = hash

	InitFlashCodec(deriveKey(cfg.SecretKey, "flash"))

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	registerRoutes(mux)

	// Rate limiter: configurable requests per second per IP (OWASP A04)
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Outermost last: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(deriveKey(cfg.SecretKey, "csrf"), cfg.IsProduction()),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
