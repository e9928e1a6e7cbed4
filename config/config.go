package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Gemini   Gemini
	Pinecone Pinecone
	JWT      JWT
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Gemini holds credentials for the generation and embedding models.
// An empty APIKey puts the AI services into mock mode instead of failing startup.
type Gemini struct {
	APIKey         string
	Model          string
	EmbeddingModel string
}

// Pinecone holds credentials for the vector index. An empty APIKey puts the
// embedding store into mock mode.
type Pinecone struct {
	APIKey string
	Index  string
}

type JWT struct {
	Secret   string
	TTLHours int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("GEMINI_EMBEDDING_MODEL", "text-embedding-004")
	viper.SetDefault("PINECONE_INDEX", "skillforge")
	viper.SetDefault("JWT_TTL_HOURS", 24)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Gemini.APIKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")
	config.Gemini.EmbeddingModel = viper.GetString("GEMINI_EMBEDDING_MODEL")

	config.Pinecone.APIKey = viper.GetString("PINECONE_API_KEY")
	config.Pinecone.Index = viper.GetString("PINECONE_INDEX")

	config.JWT.Secret = viper.GetString("JWT_SECRET")
	config.JWT.TTLHours = viper.GetInt("JWT_TTL_HOURS")

	log.Info().
		Str("port", config.Server.Port).
		Str("database", config.Database.Name).
		Bool("gemini_configured", config.Gemini.APIKey != "").
		Bool("pinecone_configured", config.Pinecone.APIKey != "").
		Msg("Config loaded")
	return &config, nil
}
