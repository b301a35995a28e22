package main

import (
	"os"
	"time"

	"foodpreorder/internal/catalog"
	"foodpreorder/internal/config"
	"foodpreorder/internal/handler"
	"foodpreorder/internal/infra/db"
	infraRepo "foodpreorder/internal/infra/repository"
	"foodpreorder/internal/infra/storage"
	"foodpreorder/internal/server"
	"foodpreorder/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(cfg config.Config) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(cfg.JWTSecret),
		accessTTL: 24 * time.Hour,
	}
}

func (i *jwtIssuer) Issue(username string, role string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  username,
		"role": role,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// 設定に応じた保存先を組み立てる
func buildStore(cfg config.Config) (storage.BlobStore, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		gormDB, err := db.Connect(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(gormDB)

	case config.StoreBackendRedis:
		client, err := db.ConnectRedis(cfg)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client), nil

	default:
		return storage.NewFileStore(cfg.DataDir)
	}
}

func main() {
	// .envがあれば読む（無くても起動する）
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("service", "foodpreorder").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	store, err := buildStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("Failed to open store")
	}
	log.Info().Str("backend", cfg.StoreBackend).Msg("Store ready")

	//Repository生成
	catalogRepo := infraRepo.NewCatalogMemoryRepository(catalog.DefaultItems())
	cartRepo := infraRepo.NewCartBlobRepository(store)
	orderRepo := infraRepo.NewOrderBlobRepository(store)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（起動時に固定パスワードをハッシュ化し、ログインでVerify）
	hasher := usecase.NewBcryptPasswordHasher(12)
	passwordHash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash admin password")
	}
	verifier := usecase.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := newJWTIssuer(cfg)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(catalogRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, catalogRepo)
	checkoutUC := usecase.NewCheckoutUsecase(cartRepo, orderRepo, idGen, clock, cfg.DeliveryFee)
	adminAuthUC := usecase.NewAdminAuthUsecase(cfg.AdminUsername, passwordHash, verifier, issuer, clock)
	adminOrderUC := usecase.NewAdminOrderUsecase(orderRepo, catalogRepo, idGen, clock)

	//Handler生成
	h := server.Handlers{
		Catalog:    handler.NewCatalogHandler(catalogUC),
		Cart:       handler.NewCartHandler(cartUC),
		Order:      handler.NewOrderHandler(checkoutUC),
		Auth:       handler.NewAuthHandler(adminAuthUC),
		AdminOrder: handler.NewAdminOrderHandler(adminOrderUC),
	}

	//Server起動
	e := server.New(cfg, log.Logger, h)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("Starting HTTP server")
	if err := server.Start(e, addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
