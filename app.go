package main

import (
	"cboard/controller"
	"cboard/dao/mysql"
	"cboard/dao/redis"
	"cboard/internal/utils"
	"cboard/logger"
	"cboard/logic"
	"cboard/middleware"
	"cboard/models"
	"cboard/router"
	"cboard/settings"
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

func openStore() (*mysql.Store, error) {
	db, err := mysql.Open()
	if err != nil {
		return nil, err
	}
	logger.Infof("Initializing MySQL successfully")
	return mysql.NewStore(db), nil
}

// tokenSecret falls back to a per-process random key outside production,
// which logs everyone out on restart.
func tokenSecret() (string, error) {
	if secret := viper.GetString("service.token.secret"); secret != "" {
		return secret, nil
	}
	if settings.IsProduction() {
		return "", errors.New("service.token.secret (JWT_SECRET) must be set in production")
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate token secret")
	}
	logger.Warnf("no token secret configured, using a random one")
	return hex.EncodeToString(buf), nil
}

func newServices(store *mysql.Store, denylist logic.TokenDenylist) (*router.Services, error) {
	secret, err := tokenSecret()
	if err != nil {
		return nil, err
	}
	expire := time.Duration(viper.GetInt64("service.token.expire_duration")) * time.Second
	tokens := utils.NewTokenManager(secret, viper.GetString("service.token.issuer"), expire)
	hasher := utils.NewPasswordHasher(viper.GetString("service.account.salt"), 0)
	sanitizer := utils.NewSanitizer()

	lookup := logic.NewUserLookup(store)
	accounts := logic.NewAccountService(store, tokens, hasher, denylist)
	boards := logic.NewBoardService(store, viper.GetInt("service.board.preview_size"))
	posts := logic.NewPostService(store, lookup, sanitizer, viper.GetInt("service.board.page_size"))
	comments := logic.NewCommentService(store, lookup, sanitizer)

	var checker middleware.RevocationChecker
	if denylist != nil {
		checker = denylist
	}
	cookieName := viper.GetString("service.token.cookie_name")

	return &router.Services{
		Member:  controller.NewMemberHandler(accounts, cookieName, int(expire/time.Second), settings.IsProduction()),
		Board:   controller.NewBoardHandler(boards, posts, viper.GetInt("service.board.category_limit")),
		Post:    controller.NewPostHandler(posts, viper.GetInt("service.post.recent_limit")),
		Comment: controller.NewCommentHandler(comments),
		Session: middleware.Session(tokens, checker, cookieName),
	}, nil
}

func serveAction(c *cli.Context) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if viper.GetBool("mysql.auto_migrate") {
		if err := store.Migrate(); err != nil {
			return err
		}
	}

	var denylist logic.TokenDenylist
	if viper.GetBool("redis.enable") {
		rdb, err := redis.NewClient()
		if err != nil {
			return err
		}
		defer rdb.Close()
		denylist = redis.NewTokenDenylist(rdb)
		logger.Infof("Initializing Redis successfully")
	}

	svc, err := newServices(store, denylist)
	if err != nil {
		return err
	}
	srv := router.NewServer(router.New(svc))

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "HTTP server ListenAndServe")
	case <-ctx.Done():
	}

	// waits for in-flight requests, forced exit after the configured time
	wait := time.Duration(viper.GetInt64("server.shutdown_waiting_time")) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()
	logger.Infof("Shutting down HTTP server (wait for all connections to be closed)...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("cboard server shutdown: %v", err)
	}
	logger.Infof("Done. cboard server closed successfully")
	return nil
}

func migrateAction(*cli.Context) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		return err
	}
	logger.Infof("schema migrated")
	return nil
}

func createCategoryAction(c *cli.Context) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	boards := logic.NewBoardService(store, viper.GetInt("service.board.preview_size"))
	category, err := boards.CreateCategory(c.Context, &models.ParamCategoryCreate{
		Title: c.String("title"),
		Desc:  c.String("desc"),
		Slug:  c.String("slug"),
	})
	if err != nil {
		return err
	}
	logger.Infof("category %q created with id %d", category.Slug, category.ID)
	return nil
}
