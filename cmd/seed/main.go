// Command seed populates a development database with demo users, tips,
// and comments so the API has something to serve out of the box.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/tipstream/api/internal/config"
	"github.com/tipstream/api/internal/database"
	"github.com/tipstream/api/internal/repository"
	"github.com/tipstream/api/internal/service"
)

func main() {
	password := flag.String("password", "password123", "Password for all seeded users")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	if err := database.ApplySchema(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "Error applying schema: %v\n", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	tipRepo := repository.NewTipRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	tokenService := service.NewTokenService(service.TokenServiceConfig{
		Secret: "seed-only",
		Issuer: cfg.JWT.Issuer,
	})
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:     userRepo,
		TokenService: tokenService,
	})
	tipService := service.NewTipService(service.TipServiceConfig{
		TipRepo:     tipRepo,
		CommentRepo: commentRepo,
		UserRepo:    userRepo,
	})

	users := []service.RegisterRequest{
		{Name: "Ada", Email: "ada@tipstream.dev", Password: *password},
		{Name: "Linus", Email: "linus@tipstream.dev", Password: *password},
		{Name: "Grace", Email: "grace@tipstream.dev", Password: *password},
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		result, err := authService.Register(ctx, u)
		if err != nil {
			// Re-running the seeder against an existing database is fine
			if err == service.ErrEmailAlreadyExists {
				existing, gerr := userRepo.GetByEmail(ctx, u.Email)
				if gerr != nil || existing == nil {
					fmt.Fprintf(os.Stderr, "Error looking up %s: %v\n", u.Email, gerr)
					os.Exit(1)
				}
				ids = append(ids, existing.ID)
				fmt.Printf("user %s already present\n", u.Email)
				continue
			}
			fmt.Fprintf(os.Stderr, "Error seeding user %s: %v\n", u.Email, err)
			os.Exit(1)
		}
		ids = append(ids, result.User.ID)
		fmt.Printf("seeded user %s (%s)\n", u.Name, result.User.ID)
	}

	tips := []struct {
		owner int
		req   service.CreateTipRequest
	}{
		{0, service.CreateTipRequest{
			Title:    "Name your goroutines",
			Body:     "Wrap goroutine bodies in a named function so stack traces point somewhere useful.",
			Category: "go",
		}},
		{1, service.CreateTipRequest{
			Title:    "Batch your writes",
			Body:     "One round trip with ten statements beats ten round trips with one statement each.",
			Category: "databases",
		}},
		{2, service.CreateTipRequest{
			Title:    "Read the error before searching it",
			Body:     "Half the time the message already says exactly what is wrong and where.",
			Category: "debugging",
		}},
	}

	for _, t := range tips {
		tip, err := tipService.Create(ctx, ids[t.owner], t.req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding tip %q: %v\n", t.req.Title, err)
			os.Exit(1)
		}
		fmt.Printf("seeded tip %q (%s)\n", tip.Title, tip.ID)

		commenter := ids[(t.owner+1)%len(ids)]
		if _, err := tipService.AddComment(ctx, tip.ID, commenter, "Good one, using this."); err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding comment on %q: %v\n", tip.Title, err)
			os.Exit(1)
		}
		if _, err := tipService.UpVote(ctx, tip.ID, commenter); err != nil {
			fmt.Fprintf(os.Stderr, "Error seeding vote on %q: %v\n", tip.Title, err)
			os.Exit(1)
		}
	}

	fmt.Println("seeding complete")
}
