package main

import (
	"context"
	"errors"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/light-bringer/pos-service/internal/app/pos/domain"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/create_campaign"
	"github.com/light-bringer/pos-service/internal/app/pos/usecases/create_item"
	"github.com/light-bringer/pos-service/internal/services"
)

// Config holds the seeder's environment configuration.
type Config struct {
	SpannerDB string `envconfig:"SPANNER_DB" required:"true"`
}

type seedItem struct {
	id    string
	name  string
	price string
	stock string
}

type seedCampaign struct {
	itemID      string
	minQuantity string
	kind        string
	value       string
}

// Demo catalog for a development database. Barcodes are short on purpose so
// they are easy to type at the register.
var seedItems = []seedItem{
	{"100001", "Espresso Beans 1kg", "24.90", "40"},
	{"100002", "Filter Coffee 500g", "12.50", "60"},
	{"100003", "Oat Milk 1l", "3.20", "120"},
	{"100004", "Ceramic Mug", "9.90", "25"},
	{"100005", "Travel Tumbler", "19.90", "15"},
}

var seedCampaigns = []seedCampaign{
	{"100001", "3", "percent", "10"},
	{"100003", "6", "percent", "15"},
	{"100004", "2", "fixed", "5"},
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	ctx := context.Background()

	svc, err := services.NewServiceOptions(ctx, cfg.SpannerDB)
	if err != nil {
		logger.Fatal("failed to wire services", zap.Error(err))
	}
	defer svc.Close()

	for _, it := range seedItems {
		_, err := svc.CreateItem.Execute(ctx, &create_item.Request{
			ID:    it.id,
			Name:  it.name,
			Price: it.price,
			Stock: it.stock,
		})
		if errors.Is(err, domain.ErrDuplicateItem) {
			logger.Info("item already seeded", zap.String("item_id", it.id))
			continue
		}
		if err != nil {
			logger.Fatal("failed to seed item", zap.String("item_id", it.id), zap.Error(err))
		}
		logger.Info("seeded item", zap.String("item_id", it.id), zap.String("name", it.name))
	}

	for _, c := range seedCampaigns {
		campID, err := svc.CreateCampaign.Execute(ctx, &create_campaign.Request{
			ItemID:      c.itemID,
			MinQuantity: c.minQuantity,
			Kind:        c.kind,
			Value:       c.value,
		})
		if errors.Is(err, domain.ErrDuplicateCampaignTier) {
			logger.Info("campaign already seeded", zap.String("item_id", c.itemID), zap.String("min_quantity", c.minQuantity))
			continue
		}
		if err != nil {
			logger.Fatal("failed to seed campaign", zap.String("item_id", c.itemID), zap.Error(err))
		}
		logger.Info("seeded campaign",
			zap.String("camp_id", campID),
			zap.String("item_id", c.itemID),
			zap.String("kind", c.kind),
			zap.String("value", c.value),
		)
	}

	logger.Info("seeding complete",
		zap.Int("items", len(seedItems)),
		zap.Int("campaigns", len(seedCampaigns)),
	)
}
