// 开发环境数据初始化工具：建表并写入示例商品。
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	catalogdomain "github.com/wyfcoding/storefront/internal/catalog/domain"
	gorm_mysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "configs/storefront/config.toml", "path to config file")
	flag.Parse()

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Sprintf("read config failed: %v", err))
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	dsn := viper.GetString("data.database.source")
	db, err := gorm.Open(gorm_mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("connect db failed: %v", err))
	}
	if err := db.AutoMigrate(&catalogdomain.Product{}); err != nil {
		panic(fmt.Sprintf("migrate failed: %v", err))
	}

	products := []catalogdomain.Product{
		{Name: "Polo Sporting Stretch Shirt", Slug: "polo-sporting-stretch-shirt", Category: "Men's Dress Shirts", Description: "Classic Polo style with modern comfort", Price: decimal.NewFromFloat(59.99), Stock: 5},
		{Name: "Brooks Brothers Long Sleeved Shirt", Slug: "brooks-brothers-long-sleeved-shirt", Category: "Men's Dress Shirts", Description: "Timeless style and premium comfort", Price: decimal.NewFromFloat(85.90), Stock: 10},
		{Name: "Tommy Hilfiger Classic Fit Dress Shirt", Slug: "tommy-hilfiger-classic-fit-dress-shirt", Category: "Men's Dress Shirts", Description: "A perfect blend of classic design and modern fit", Price: decimal.NewFromFloat(99.95), Stock: 0},
		{Name: "Calvin Klein Slim Fit Stretch Shirt", Slug: "calvin-klein-slim-fit-stretch-shirt", Category: "Men's Dress Shirts", Description: "Streamlined design with flexible stretch fabric", Price: decimal.NewFromFloat(39.95), Stock: 3},
		{Name: "Polo Ralph Lauren Oxford Shirt", Slug: "polo-ralph-lauren-oxford-shirt", Category: "Men's Dress Shirts", Description: "Iconic Polo design with refined oxford fabric", Price: decimal.NewFromFloat(79.99), Stock: 2},
		{Name: "Polo Classic Pink Hoodie", Slug: "polo-classic-pink-hoodie", Category: "Men's Sweatshirts", Description: "Soft, stylish, and perfect for laid-back days", Price: decimal.NewFromFloat(99.99), Stock: 8},
	}

	for i := range products {
		result := db.Where("slug = ?", products[i].Slug).FirstOrCreate(&products[i])
		if result.Error != nil {
			slog.Error("seed product failed", "slug", products[i].Slug, "error", result.Error)
			continue
		}
		slog.Info("seeded product", "slug", products[i].Slug, "id", products[i].ID)
	}
	slog.Info("seed finished", "count", len(products))
}
