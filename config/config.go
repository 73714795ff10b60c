package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config armazena todas as configurações do AgendaFarma.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Persistência de usuários (arquivo JSON reescrito por inteiro)
	UsuariosFilePath string

	// Servidor HTTP
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// O .env é carregado antes, no main, via godotenv.
func LoadConfig() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		UsuariosFilePath: getEnv("USUARIOS_FILE_PATH", "usuarios_farmacia.json"),

		ReadTimeout:  getDurationEnv("HTTP_READ_TIMEOUT_SEC", 10) * time.Second,
		WriteTimeout: getDurationEnv("HTTP_WRITE_TIMEOUT_SEC", 10) * time.Second,
		IdleTimeout:  getDurationEnv("HTTP_IDLE_TIMEOUT_SEC", 60) * time.Second,
	}
}

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getDurationEnv lê uma variável numérica e a retorna como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return time.Duration(defaultValue)
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Aviso: valor de %s ('%s') não é um inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return time.Duration(defaultValue)
	}
	return time.Duration(value)
}
