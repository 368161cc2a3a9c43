package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	// DefaultActorID dipakai sebagai identitas penulis saat request
	// tidak membawa X-Actor-ID (belum ada auth di console ini).
	DefaultActorID int
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	// Kredensial DB wajib ada sejak start; tanpa ini service tidak berguna.
	for _, key := range []string{"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"} {
		if os.Getenv(key) == "" {
			log.Fatalf("❌ %s belum diset! Cek .env kamu.", key)
		}
	}
	log.Println("✅ Kredensial database lengkap.")

	DefaultActorID = 1
	if v := GetEnv("ACTOR_ID"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			DefaultActorID = n
		} else {
			log.Printf("⚠️ ACTOR_ID tidak valid (%q), pakai default 1", v)
		}
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
