package main

import (
	"log"
	"os"
	"time"

	"kitchen-pos/config"
	httpapi "kitchen-pos/internal/api/http"
	"kitchen-pos/internal/service"
	"kitchen-pos/internal/storage"
)

const (
	defaultPort     = "8080"
	menuCacheTTL    = 10 * time.Minute
	orderEventTopic = "orders"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(orderEventTopic)
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	menuCache := storage.NewRedisMenuCache(rdb, menuCacheTTL)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	qrGenerator := service.DefaultQRGenerator{BaseURL: os.Getenv("PUBLIC_BASE_URL")}

	products := service.NewProductService(repo)
	menuGroups := service.NewMenuGroupService(repo)
	menus := service.NewMenuService(repo, repo, repo, menuCache)
	tables := service.NewTableService(repo, repo, qrGenerator)
	tableGroups := service.NewTableGroupService(repo, repo, repo)
	orders := service.NewOrderService(repo, repo, repo, publisher)

	handler := httpapi.NewHandler(products, menuGroups, menus, tables, tableGroups, orders)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	httpapi.StartServer(":"+port, httpapi.NewRouter(handler))
}
