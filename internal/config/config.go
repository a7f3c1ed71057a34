package config

import (
	"errors"  // For building validation errors
	"net"     // For host:port joining
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For token lifetime

	"github.com/go-sql-driver/mysql" // For DSN formatting
	"github.com/joho/godotenv"       // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL  = "mysql"  // MySQL through gorm.io/driver/mysql
	DriverSQLite = "sqlite" // Embedded SQLite through gorm.io/driver/sqlite
)

// Config holds the application configuration
type Config struct {
	AppPort       string        // Application port
	DBDriver      string        // Database driver: mysql or sqlite
	DBUser        string        // Database user
	DBPassword    string        // Database password
	DBHost        string        // Database host
	DBPort        string        // Database port
	DBName        string        // Database name
	SQLitePath    string        // SQLite database file
	JWTSecret     string        // JWT secret key
	JWTTTL        time.Duration // JWT lifetime
	RedisAddr     string        // Redis server address
	RedisPass     string        // Redis password
	RedisDB       int           // Redis database number
	IsProd        bool          // Is production environment
	LogLevel      string        // Logrus level name
	AdminUsername string        // First-run administrator username
	AdminPassword string        // First-run administrator password
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:       getEnv("APP_PORT", "8080"),                // Application port
		DBDriver:      getEnv("DB_DRIVER", DriverMySQL),          // Database driver
		DBUser:        os.Getenv("DB_USER"),                      // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),                  // Database password
		DBHost:        getEnv("DB_HOST", "127.0.0.1"),            // Database host
		DBPort:        getEnv("DB_PORT", "3306"),                 // Database port
		DBName:        os.Getenv("DB_NAME"),                      // Database name
		SQLitePath:    getEnv("SQLITE_PATH", "payroll.db"),       // SQLite database file
		JWTSecret:     os.Getenv("JWT_SECRET"),                   // JWT secret key
		JWTTTL:        getEnvAsDuration("JWT_TTL", 24*time.Hour), // JWT lifetime
		RedisAddr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),    // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),                   // Redis password
		RedisDB:       getEnvAsInt("REDIS_DB", 0),                // Redis database number
		IsProd:        os.Getenv("IS_PROD") == "true",            // Is production environment
		LogLevel:      getEnv("LOG_LEVEL", "info"),               // Logrus level
		AdminUsername: os.Getenv("ADMIN_USERNAME"),               // First-run administrator username
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),               // First-run administrator password
	}
}

// Validate reports settings the server cannot start without
func (c *Config) Validate() error {
	var errs []error // Collected problems
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	switch c.DBDriver {
	case DriverMySQL:
		if c.DBUser == "" || c.DBName == "" {
			errs = append(errs, errors.New("DB_USER and DB_NAME are required for mysql"))
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for sqlite"))
		}
	default:
		errs = append(errs, errors.New("DB_DRIVER must be mysql or sqlite"))
	}
	if c.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	return errors.Join(errs...) // nil when nothing failed
}

// MySQLDSN builds the Data Source Name for the MySQL driver
func (c *Config) MySQLDSN() string {
	dsn := mysql.NewConfig()
	dsn.User = c.DBUser
	dsn.Passwd = c.DBPassword
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(c.DBHost, c.DBPort) // Brackets IPv6 hosts
	dsn.DBName = c.DBName
	dsn.ParseTime = true // Scan DATETIME into time.Time
	return dsn.FormatDSN()
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if val, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if val, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return val
	}
	return defaultVal
}
