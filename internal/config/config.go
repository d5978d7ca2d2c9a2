package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config — структура, хранящая все настройки приложения.
// Она заполняется один раз при старте и дальше только читается.
type Config struct {
	// ProviderURL is the base of the verse provider, e.g. "https://www.jw.org".
	ProviderURL string

	// Locale is the wtlocale token passed through verbatim in the URL.
	Locale string

	// LinkOnly switches output from verse text to a markdown link.
	LinkOnly bool

	// Formatting strings wrapped around the rendered output.
	LinkPrefix  string
	LinkSuffix  string
	VersePrefix string
	VerseSuffix string

	// BooksPath optionally points to a JSON book table (localized names).
	BooksPath string

	// ProxyAddr optionally routes provider traffic through SOCKS5.
	ProxyAddr string

	TelegramToken string
	SQLitePath    string
	HTTPAddr      string
}

// Load считывает .env файл и заполняет структуру Config.
func Load() (*Config, error) {
	// Если файла нет — не страшно, переменные могли задать в окружении.
	if err := godotenv.Load(); err != nil {
		fmt.Println("Инфо: файл .env не найден, ищем переменные в окружении OS")
	}

	cfg := &Config{
		ProviderURL:   withDefault(os.Getenv("PROVIDER_URL"), "https://www.jw.org"),
		Locale:        withDefault(os.Getenv("WT_LOCALE"), "E"),
		LinkOnly:      parseBool(os.Getenv("LINK_ONLY")),
		LinkPrefix:    os.Getenv("LINK_PREFIX"),
		LinkSuffix:    os.Getenv("LINK_SUFFIX"),
		VersePrefix:   os.Getenv("VERSE_PREFIX"),
		VerseSuffix:   os.Getenv("VERSE_SUFFIX"),
		ProxyAddr:     os.Getenv("SOCKS_PROXY"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		SQLitePath:    resolvePath(withDefault(os.Getenv("SQLITE_PATH"), "data/app.db")),
		HTTPAddr:      withDefault(os.Getenv("HTTP_ADDR"), ":8080"),
	}

	if p := os.Getenv("BOOKS_PATH"); p != "" {
		cfg.BooksPath = resolvePath(p)
	}

	if !strings.HasPrefix(cfg.ProviderURL, "http://") && !strings.HasPrefix(cfg.ProviderURL, "https://") {
		return nil, fmt.Errorf("PROVIDER_URL должен начинаться с http:// или https://")
	}

	return cfg, nil
}

func withDefault(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func resolvePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return p
	}
	if filepath.IsAbs(p) {
		return p
	}

	if exe, err := os.Executable(); err == nil {
		base := filepath.Dir(exe)
		return filepath.Clean(filepath.Join(base, p))
	}

	if cwd, err := os.Getwd(); err == nil {
		return filepath.Clean(filepath.Join(cwd, p))
	}

	return p
}
