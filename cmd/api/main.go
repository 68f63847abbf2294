// Command api serves the marketplace HTTP API, the notification stream and the
// gRPC health endpoint.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/MikeMC777/ropa-market/internal/auth"
	"github.com/MikeMC777/ropa-market/internal/config"
	"github.com/MikeMC777/ropa-market/internal/db"
	"github.com/MikeMC777/ropa-market/internal/health"
	"github.com/MikeMC777/ropa-market/internal/ledger"
	"github.com/MikeMC777/ropa-market/internal/mailer"
	"github.com/MikeMC777/ropa-market/internal/message"
	"github.com/MikeMC777/ropa-market/internal/notify"
	"github.com/MikeMC777/ropa-market/internal/order"
	"github.com/MikeMC777/ropa-market/internal/product"
	"github.com/MikeMC777/ropa-market/internal/seller"
	"github.com/MikeMC777/ropa-market/internal/user"
	"github.com/MikeMC777/ropa-market/internal/wishlist"
)

// @title        Ropa Market API
// @version      1.0
// @description  Second-hand clothing marketplace: listings, orders with product reservation, live notifications.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization

func init() {
	// Clients read money as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ropa-market",
		Short: "Second-hand clothing marketplace API",
	}
	root.AddCommand(serveCmd(), migrateCmd())
	return root
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			ctx := cmd.Context()
			pool, err := db.Connect(ctx, cfg.PostgresDSN, cfg.DBMaxConns)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := db.Migrate(ctx, pool); err != nil {
				return err
			}
			log.Printf("[migrate] schema up to date")
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the gRPC health server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, config.Load(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply the schema before serving")
	return cmd
}

func serve(ctx context.Context, cfg config.Config, migrate bool) error {
	pool, err := db.Connect(ctx, cfg.PostgresDSN, cfg.DBMaxConns)
	if err != nil {
		return err
	}
	defer pool.Close()
	if migrate {
		if err := db.Migrate(ctx, pool); err != nil {
			return err
		}
	}

	d, err := buildDeps(cfg, pool)
	if err != nil {
		return err
	}

	go d.notify.Hub().Run(ctx, cfg.Heartbeat)
	go d.health.Run(ctx, 10*time.Second)

	gs := grpc.NewServer()
	d.health.Register(gs)
	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	go func() {
		log.Printf("[grpc] health listening on %s", cfg.GRPCAddr)
		if err := gs.Serve(lis); err != nil {
			log.Printf("[grpc] serve: %v", err)
		}
	}()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(d),
		ReadHeaderTimeout: 10 * time.Second,
		// Request contexts end with ctx so open event streams return on shutdown.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	errc := make(chan error, 1)
	go func() {
		log.Printf("[http] listening on %s", cfg.HTTPAddr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		gs.Stop()
		return err
	case <-ctx.Done():
	}

	log.Printf("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	gs.GracefulStop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func buildDeps(cfg config.Config, pool *pgxpool.Pool) (*deps, error) {
	images, err := product.NewImageStore(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("upload dir: %w", err)
	}
	mail, err := mailer.New(cfg.SMTP)
	if err != nil {
		return nil, err
	}
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	notes := notify.NewService(notify.NewPGRepo(pool), notify.NewHub())
	products := product.NewPGRepo(pool)
	sellers := seller.NewPGRepo(pool)

	return &deps{
		tokens:    tokens,
		users:     user.NewService(user.NewPGRepo(pool), tokens),
		products:  product.NewService(products, images),
		orders:    order.NewService(order.NewPGRepo(pool), products, notes, cfg.VerifyTotals),
		notify:    notes,
		messages:  message.NewService(message.NewPGRepo(pool), notes),
		wishlist:  wishlist.NewService(wishlist.NewPGRepo(pool)),
		sellers:   seller.NewService(sellers, sellers, notes, mail),
		payments:  ledger.NewPGRepo(pool),
		health:    health.NewChecker(pool),
		uploadDir: images.Root(),
	}, nil
}
