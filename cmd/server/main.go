package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "modernc.org/sqlite"

	emailPkg "clubsite/internal/adapters/email"
	web "clubsite/internal/adapters/http"
	"clubsite/internal/adapters/http/perf"
	"clubsite/internal/adapters/storage"
	announcementStore "clubsite/internal/adapters/storage/announcement"
	contactStore "clubsite/internal/adapters/storage/contact"
	eventStore "clubsite/internal/adapters/storage/event"
	galleryStore "clubsite/internal/adapters/storage/gallery"
	"clubsite/internal/adapters/storage/media"
	memberStore "clubsite/internal/adapters/storage/member"
	"clubsite/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg := config.Load()

	// Initialize database with WAL mode and busy timeout
	dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	stores := &web.Stores{
		MemberStore:       memberStore.NewSQLiteStore(timedDB),
		EventStore:        eventStore.NewSQLiteStore(timedDB),
		AnnouncementStore: announcementStore.NewSQLiteStore(timedDB),
		GalleryStore:      galleryStore.NewSQLiteStore(timedDB),
		ContactStore:      contactStore.NewSQLiteStore(timedDB),
	}

	uploads, err := media.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to prepare upload directory: %v", err)
	}

	// Configure email sender for contact notifications
	if cfg.ResendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendKey, cfg.ResendFrom), cfg.ResendFrom, cfg.AdminEmail)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), cfg.ResendFrom, cfg.AdminEmail)
		if cfg.IsProduction() {
			log.Println("WARNING: CLUBSITE_RESEND_KEY is not set — email delivery is DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set CLUBSITE_RESEND_KEY for real delivery)")
		}
	}

	mux := web.NewMux(cfg, stores, uploads, collector)

	log.Printf("Clubsite %s starting on %s (env=%s, schema=%d)", version, cfg.Addr, cfg.Env, storage.LatestSchemaVersion())
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
