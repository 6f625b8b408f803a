package database

import (
	"fmt"
	"log"
	"os"
	"time"

	carreramodel "aulapro_backend/internals/features/academics/carreras/model"
	ciclomodel "aulapro_backend/internals/features/academics/ciclos/model"
	gradomodel "aulapro_backend/internals/features/academics/grados/model"
	configmodel "aulapro_backend/internals/features/school/configuracion/model"
	estmodel "aulapro_backend/internals/features/school/establecimientos/model"
	alumnomodel "aulapro_backend/internals/features/students/alumnos/model"
	matriculamodel "aulapro_backend/internals/features/students/matriculas/model"
	usuariomodel "aulapro_backend/internals/features/users/auth/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Conectando a PostgreSQL...")

	// DSN completo + statement_timeout.
	// Con PgBouncer (transaction pooling) dejar PreferSimpleProtocol=true.
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=aulapro&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Error de conexión a la DB: %v", err)
	}
	DB = db
	log.Println("✅ DB conectada.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate crea/actualiza el esquema de todas las features.
func Migrate() {
	err := DB.AutoMigrate(
		&estmodel.EstablecimientoModel{},
		&configmodel.ConfiguracionGeneralModel{},
		&ciclomodel.CicloEscolarModel{},
		&carreramodel.CarreraModel{},
		&gradomodel.GradoModel{},
		&alumnomodel.AlumnoModel{},
		&matriculamodel.MatriculaModel{},
		&usuariomodel.UsuarioModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate: %v", err)
	}
}

// EnsureIndexes crea los índices que GORM no expresa con tags:
// únicos parciales y por-scope. Idempotente.
func EnsureIndexes() {
	stmts := []string{
		// un solo ciclo activo por establecimiento
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_ciclo_activo_por_establecimiento
		   ON ciclos_escolares (ciclo_establecimiento_id)
		   WHERE ciclo_es_activo = TRUE AND ciclo_deleted_at IS NULL`,
		// nombre de ciclo único por establecimiento
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_ciclo_nombre_establecimiento
		   ON ciclos_escolares (ciclo_establecimiento_id, lower(ciclo_nombre))
		   WHERE ciclo_deleted_at IS NULL`,
		// carrera única por establecimiento
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_carrera_nombre_establecimiento
		   ON carreras (carrera_establecimiento_id, lower(carrera_nombre))
		   WHERE carrera_deleted_at IS NULL`,
		// una matrícula por (alumno, grado, ciclo)
		`CREATE UNIQUE INDEX IF NOT EXISTS uq_matricula_alumno_grado_ciclo
		   ON matriculas (matricula_alumno_id, matricula_grado_id, matricula_ciclo_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matricula_grado_estado
		   ON matriculas (matricula_grado_id, matricula_estado)`,
		`CREATE INDEX IF NOT EXISTS idx_alumno_codigo_personal
		   ON alumnos (lower(alumno_codigo_personal))`,
	}
	for _, s := range stmts {
		if err := DB.Exec(s).Error; err != nil {
			log.Printf("[WARN] índice no aplicado: %v", err)
		}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
