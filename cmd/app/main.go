package main

import (
	"log"
	"net/http"

	"versebot/internal/books"
	"versebot/internal/config"
	"versebot/internal/db"
	"versebot/internal/format"
	"versebot/internal/httpapi"
	"versebot/internal/network"
	"versebot/internal/parser"
	"versebot/internal/resolver"
	"versebot/internal/service"
	"versebot/internal/telegram"
)

func main() {
	// 1. Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	log.Println("=== VERSE BOT STARTING ===")

	// 2. HTTP-клиент (при необходимости через SOCKS5)
	httpClient, err := network.NewClient(cfg.ProxyAddr)
	if err != nil {
		log.Fatalf("Fatal: ошибка сети: %v", err)
	}

	// 3. Таблица книг: встроенная или внешняя (локализованная)
	table := books.Default()
	if cfg.BooksPath != "" {
		table, err = books.Load(cfg.BooksPath)
		if err != nil {
			log.Fatalf("Ошибка таблицы книг: %v", err)
		}
		log.Printf("Таблица книг: %s", cfg.BooksPath)
	}

	res := resolver.New(table)
	verses := service.NewVerseClient(httpClient, cfg.ProviderURL, cfg.Locale, parser.NewFinderExtractor())

	opts := format.Options{
		LinkOnly:    cfg.LinkOnly,
		LinkPrefix:  cfg.LinkPrefix,
		LinkSuffix:  cfg.LinkSuffix,
		VersePrefix: cfg.VersePrefix,
		VerseSuffix: cfg.VerseSuffix,
	}

	// 4. История запросов (SQLite)
	store, err := db.Open(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Ошибка БД: %v", err)
	}
	defer store.Close()
	log.Printf("SQLite: %s", cfg.SQLitePath)

	// 5. HTTP API
	api := httpapi.New(res, verses, store, opts, cfg.Locale)
	httpErr := make(chan error, 1)
	go func() {
		log.Printf("HTTP API запущен на %s", cfg.HTTPAddr)
		httpErr <- http.ListenAndServe(cfg.HTTPAddr, api.Handler())
	}()

	// 6. Бот (опционально: без токена работаем только как HTTP API)
	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, res, verses, store, opts, cfg.Locale)
		if err != nil {
			log.Fatalf("Ошибка при создании бота: %v", err)
		}

		log.Println("Бот запущен! Пришли ему ссылку на стих, например John 3:16.")
		bot.Start()
		return
	}

	if err := <-httpErr; err != nil {
		log.Fatalf("Ошибка HTTP API: %v", err)
	}
}
