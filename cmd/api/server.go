package main

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	booksh "github.com/bookw0rm/bookshelf-api/internal/api/handlers/books"
	ratingsh "github.com/bookw0rm/bookshelf-api/internal/api/handlers/ratings"
	usersh "github.com/bookw0rm/bookshelf-api/internal/api/handlers/users"
	mw "github.com/bookw0rm/bookshelf-api/internal/api/middlewares"
	"github.com/bookw0rm/bookshelf-api/internal/api/router"
	"github.com/bookw0rm/bookshelf-api/internal/metrics/viewqueue"
	"github.com/bookw0rm/bookshelf-api/internal/repository/mongoconnect"
	"github.com/bookw0rm/bookshelf-api/internal/security/token"
	s3store "github.com/bookw0rm/bookshelf-api/internal/storage/s3"
	storebooks "github.com/bookw0rm/bookshelf-api/internal/store/books"
	storeratings "github.com/bookw0rm/bookshelf-api/internal/store/ratings"
	storeusers "github.com/bookw0rm/bookshelf-api/internal/store/users"
	"github.com/bookw0rm/bookshelf-api/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

func main() {
	_ = godotenv.Load(".env")

	port := os.Getenv("PORT")
	if port == "" {
		port = "3002"
	}

	ctx := context.Background()

	client, err := mongoconnect.ConnectDB(ctx)
	if err != nil {
		log.Fatalf("Mongo connection failed: %v", err)
	}
	db := mongoconnect.Database(client)
	log.Println("Connected to MongoDB, database:", db.Name())

	// Cover storage is optional; without a bucket the endpoint reports 503.
	var covers booksh.CoverPresigner
	if os.Getenv("AWS_BUCKET") != "" {
		cs, err := s3store.NewCoverStore(ctx)
		if err != nil {
			log.Fatalf("cover storage init failed: %v", err)
		}
		covers = cs
	} else {
		log.Println("AWS_BUCKET not set; cover uploads disabled")
	}

	viewqueue.Start(db.Collection("book_views"), 10000, 2)

	verifier := token.NewJWTVerifier(token.LoadConfig())

	bh := booksh.NewHandler(storebooks.New(db), covers)
	rh := ratingsh.NewHandler(storeratings.New(db))
	uh := usersh.NewHandler(storeusers.New(db))

	mux := router.Router(router.Deps{
		Verifier: verifier,
		Books:    bh,
		Ratings:  rh,
		Users:    uh,
		PingDB: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
	})

	chain := []utils.Middleware{
		mw.Cors,
		mw.ResponseTime,
		mw.RequestID,
		mw.Recovery,
		mw.HPP(mw.DefaultHPPOptions()),
		mw.BodySizeLimit,
	}
	if rdb := redisClient(); rdb != nil {
		tb := mw.NewRedisTokenBucket(rdb, 5, 20, mw.PerIPKey("tb"))
		sw := mw.NewRedisSlidingWindow(rdb, 3000, 60*time.Minute, mw.PerIPKey("sw"))
		chain = append(chain, tb.Middleware, sw.Middleware)
	}
	chain = append(chain, mw.Compression, mw.SecurityHeaders)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      utils.ApplyMiddleware(mux, chain...),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("Server is running on port:", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalln("Error starting server:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	viewqueue.Shutdown()
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
}

// redisClient builds the rate-limiter backend when Redis is configured;
// the API runs unlimited without it.
func redisClient() *redis.Client {
	var rdb *redis.Client

	if url := os.Getenv("UPSTASH_REDIS_URL"); url != "" {
		opt, err := redis.ParseURL(url)
		if err != nil {
			log.Fatalf("invalid UPSTASH_REDIS_URL: %v", err)
		}
		if opt.TLSConfig == nil {
			opt.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		opt.DialTimeout = 5 * time.Second
		opt.ReadTimeout = 1 * time.Second
		opt.WriteTimeout = 1 * time.Second
		rdb = redis.NewClient(opt)
	} else if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         addr,
			Username:     os.Getenv("REDIS_USER"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DB:           0,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
	} else {
		log.Println("Redis not configured; rate limiting disabled")
		return nil
	}

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	log.Println("Connected to Redis")
	return rdb
}
