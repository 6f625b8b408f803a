package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string

	// Regla de negocio: permitir que un alumno tenga más de un grado
	// en el mismo ciclo escolar. Por defecto NO.
	AllowMultiGradePerCycle bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No se encontró .env, usando ENV del sistema")
		} else {
			log.Println("✅ .env cargado!")
		}
	} else {
		log.Println("🚀 Corriendo en Railway, usando ENV del sistema")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	AllowMultiGradePerCycle = envBool("ALLOW_MULTI_GRADE_PER_CYCLE", false)

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET sin definir!")
	} else {
		log.Println("✅ JWT_SECRET cargado.")
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}
