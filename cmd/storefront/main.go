// Storefront 主程序。
// 功能：商品目录、购物车、用户档案、会话认证与结账下单。
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/cache"
	"github.com/wyfcoding/pkg/config"
	"github.com/wyfcoding/pkg/database"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/messagequeue/kafka"
	"github.com/wyfcoding/pkg/messagequeue/outbox"
	"github.com/wyfcoding/pkg/metrics"
	authapp "github.com/wyfcoding/storefront/internal/auth/application"
	authredis "github.com/wyfcoding/storefront/internal/auth/infrastructure/persistence/redis"
	authhttp "github.com/wyfcoding/storefront/internal/auth/interfaces/http"
	cartapp "github.com/wyfcoding/storefront/internal/cart/application"
	cartdomain "github.com/wyfcoding/storefront/internal/cart/domain"
	cartmysql "github.com/wyfcoding/storefront/internal/cart/infrastructure/persistence/mysql"
	carthttp "github.com/wyfcoding/storefront/internal/cart/interfaces/http"
	catalogapp "github.com/wyfcoding/storefront/internal/catalog/application"
	catalogdomain "github.com/wyfcoding/storefront/internal/catalog/domain"
	catalogmysql "github.com/wyfcoding/storefront/internal/catalog/infrastructure/persistence/mysql"
	cataloghttp "github.com/wyfcoding/storefront/internal/catalog/interfaces/http"
	notifyapp "github.com/wyfcoding/storefront/internal/notification/application"
	notifydomain "github.com/wyfcoding/storefront/internal/notification/domain"
	notifymysql "github.com/wyfcoding/storefront/internal/notification/infrastructure/persistence/mysql"
	notifyconsumer "github.com/wyfcoding/storefront/internal/notification/interfaces/consumer"
	orderapp "github.com/wyfcoding/storefront/internal/order/application"
	orderdomain "github.com/wyfcoding/storefront/internal/order/domain"
	"github.com/wyfcoding/storefront/internal/order/infrastructure/messaging"
	ordermysql "github.com/wyfcoding/storefront/internal/order/infrastructure/persistence/mysql"
	orderhttp "github.com/wyfcoding/storefront/internal/order/interfaces/http"
	userapp "github.com/wyfcoding/storefront/internal/user/application"
	userdomain "github.com/wyfcoding/storefront/internal/user/domain"
	usermysql "github.com/wyfcoding/storefront/internal/user/infrastructure/persistence/mysql"
	userhttp "github.com/wyfcoding/storefront/internal/user/interfaces/http"
	"golang.org/x/sync/errgroup"
)

var configPath = flag.String("config", "configs/storefront/config.toml", "config file path")

func main() {
	flag.Parse()

	// 1. 配置
	var cfg config.Config
	if err := config.Load(*configPath, &cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 2. 日志
	logCfg := &logging.Config{Service: cfg.Server.Name, Level: cfg.Log.Level}
	logger := logging.NewFromConfig(logCfg)
	slog.SetDefault(logger.Logger)

	// 3. 指标
	metricsImpl := metrics.NewMetrics(cfg.Server.Name)

	// 4. 数据库
	db, err := database.NewDB(cfg.Data.Database, cfg.CircuitBreaker, logger, metricsImpl)
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	if cfg.Server.Environment == "dev" {
		err := db.RawDB().AutoMigrate(
			&userdomain.User{},
			&catalogdomain.Product{},
			&cartdomain.Cart{},
			&cartdomain.CartItem{},
			&ordermysql.OrderModel{},
			&ordermysql.OrderItemModel{},
			&notifydomain.Notification{},
			&outbox.Message{},
		)
		if err != nil {
			slog.Error("failed to migrate database", "error", err)
		}
	}

	// 5. Kafka & Outbox
	kafkaProducer := kafka.NewProducer(&cfg.MessageQueue.Kafka, logger, metricsImpl)
	outboxMgr := outbox.NewManager(db.RawDB(), logger.Logger)
	pusher := func(ctx context.Context, topic, key string, payload []byte) error {
		return kafkaProducer.PublishToTopic(ctx, topic, []byte(key), payload)
	}
	outboxProcessor := outbox.NewProcessor(outboxMgr, pusher, 100, 2*time.Second)

	// 6. Redis
	redisCache, err := cache.NewRedisCache(&cfg.Data.Redis, cfg.CircuitBreaker, logger, metricsImpl)
	if err != nil {
		slog.Error("failed to init redis", "error", err)
		os.Exit(1)
	}

	// 7. 仓储
	userRepo := usermysql.NewUserRepository(db.RawDB())
	productRepo := catalogmysql.NewProductRepository(db.RawDB())
	cartRepo := cartmysql.NewCartRepository(db.RawDB())
	orderRepo := ordermysql.NewOrderRepository(db.RawDB())
	notifyRepo := notifymysql.NewNotificationRepository(db.RawDB())
	sessionRepo := authredis.NewSessionRedisRepository(redisCache.GetClient())
	publisher := messaging.NewOutboxPublisher(outboxMgr)

	// 8. 应用服务
	authCmdSvc := authapp.NewAuthCommandService(userRepo, sessionRepo)
	authQuerySvc := authapp.NewAuthQueryService(sessionRepo)
	userSvc := userapp.NewUserService(userRepo)
	catalogSvc := catalogapp.NewCatalogService(productRepo)
	cartCmdSvc := cartapp.NewCartCommandService(cartRepo, productRepo, publisher)
	cartQuerySvc := cartapp.NewCartQueryService(cartRepo)
	checkoutSvc := orderapp.NewCheckoutService(db.RawDB(), orderRepo, cartRepo, userRepo, publisher)
	orderQuerySvc := orderapp.NewOrderQueryService(orderRepo)
	notifySvc := notifyapp.NewNotificationService(notifyRepo)

	// 9. 事件消费
	orderPlacedHandler := notifyconsumer.NewOrderPlacedHandler(notifySvc, logger.Logger)
	consumerCfg := cfg.MessageQueue.Kafka
	consumerCfg.Topic = orderdomain.OrderPlacedEventType
	if consumerCfg.GroupID == "" {
		consumerCfg.GroupID = "storefront-notification-group"
	}
	orderPlacedConsumer := kafka.NewConsumer(&consumerCfg, logger, metricsImpl)
	orderPlacedConsumer.Start(context.Background(), 3, orderPlacedHandler.Handle)

	// 10. 接口层
	if cfg.Server.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(authhttp.SessionMiddleware(authQuerySvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "UP",
			"service":   cfg.Server.Name,
			"timestamp": time.Now().Unix(),
		})
	})

	api := r.Group("/api")
	authhttp.NewHandler(authCmdSvc, authQuerySvc).RegisterRoutes(api)
	userhttp.NewUserHandler(userSvc).RegisterRoutes(api)
	cataloghttp.NewCatalogHandler(catalogSvc).RegisterRoutes(api)
	carthttp.NewCartHandler(cartCmdSvc, cartQuerySvc).RegisterRoutes(api)
	orderhttp.NewOrderHandler(checkoutSvc, orderQuerySvc).RegisterRoutes(api)

	// 11. 启动
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		outboxProcessor.Start()
		<-ctx.Done()
		outboxProcessor.Stop()
		return nil
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.HTTP.Port),
		Handler: r,
	}

	g.Go(func() error {
		slog.Info("HTTP server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			slog.Info("shutting down servers...")
		case <-ctx.Done():
			slog.Info("context cancelled, shutting down...")
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
	}
}
