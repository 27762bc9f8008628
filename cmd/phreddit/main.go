package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"time"

	"phreddit/pkg/cascade"
	"phreddit/pkg/comments"
	"phreddit/pkg/communities"
	"phreddit/pkg/flairs"
	"phreddit/pkg/handlers"
	"phreddit/pkg/middleware"
	"phreddit/pkg/posts"
	"phreddit/pkg/session"
	"phreddit/pkg/tree"
	"phreddit/pkg/user"
	"phreddit/pkg/votes"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const (
	createSchema = `CREATE TABLE IF NOT EXISTS users (
		id int(11) unsigned NOT NULL AUTO_INCREMENT,
		email VARCHAR(100) NOT NULL,
		display_name VARCHAR(50) NOT NULL,
		password VARBINARY(100) NOT NULL,
		reputation INT NOT NULL DEFAULT 100,
		is_admin TINYINT(1) NOT NULL DEFAULT 0,
		created DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY email_uniq (email),
		UNIQUE KEY display_name_uniq (display_name)
	) ENGINE=INNODB DEFAULT CHARSET=utf8;`
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// Missing .env is fine: everything has a default or comes from the
	// real environment.
	_ = godotenv.Load()

	app := &Application{
		MongoConnectionString: env("MONGO_URL", "mongodb://localhost:27017"),
		MongoDBName:           env("MONGO_DB", "phreddit"),
		MySQLConnectionString: env("MYSQL_DSN", "root:qwer1234@tcp(localhost:3306)/phreddit?parseTime=true"),
		RedisOptions: &redis.Options{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		ServerAddr:         env("SERVER_ADDR", "127.0.0.1:8000"),
		PrivateKeyLocation: env("JWT_PRIVATE_KEY", "key.rsa"),
		PublicKeyLocation:  env("JWT_PUBLIC_KEY", "key.rsa.pub"),

		AdminEmail:       env("ADMIN_EMAIL", "admin@phreddit.local"),
		AdminDisplayName: env("ADMIN_DISPLAY_NAME", "admin"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
	}

	app.Run()
}

type Application struct {
	MongoConnectionString string
	MongoDBName           string
	MySQLConnectionString string
	RedisOptions          *redis.Options

	ServerAddr         string
	PublicKeyLocation  string
	PrivateKeyLocation string

	AdminEmail       string
	AdminDisplayName string
	AdminPassword    string

	HTTPServer *http.Server
}

func (a *Application) Run() {
	r := mux.NewRouter()

	rdb := redis.NewClient(a.RedisOptions)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		panic(err.Error())
	}

	privateKeyBytes, err := ioutil.ReadFile(a.PrivateKeyLocation)
	if err != nil {
		panic(err)
	}

	publicKeyBytes, err := ioutil.ReadFile(a.PublicKeyLocation)
	if err != nil {
		panic(err)
	}

	smJWT, err := session.NewSessionsJWTManager(privateKeyBytes, publicKeyBytes)
	if err != nil {
		panic(err)
	}

	zapLogger, _ := zap.NewProduction()
	defer zapLogger.Sync() // flushes buffer, if any
	logger := zapLogger.Sugar()

	sm := session.NewSessionManagerRedis(rdb, smJWT, logger)

	db, err := sql.Open("mysql", a.MySQLConnectionString)
	if err != nil {
		panic(err.Error())
	}

	defer db.Close()
	err = db.Ping()
	if err != nil {
		panic(err)
	}

	_, err = db.Exec(createSchema)
	if err != nil {
		panic(err)
	}

	userRepo := user.NewUserRepoSQL(db)
	a.seedAdmin(userRepo, logger)

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := posts.NewMongoClient(ctx, a.MongoConnectionString)
	if err != nil {
		panic(err)
	}
	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		panic(err)
	}

	mongoDB := client.Database(a.MongoDBName)
	postsRepo := posts.NewPostsRepoMongo(mongoDB)
	commentsRepo := comments.NewCommentsRepoMongo(mongoDB)
	communitiesRepo := communities.NewCommunitiesRepoMongo(mongoDB)
	flairsRepo := flairs.NewFlairsRepoMongo(mongoDB)

	ledger := &votes.Ledger{
		Posts:    postsRepo,
		Comments: commentsRepo,
		Users:    userRepo,
		Logger:   logger,
	}
	engine := &cascade.Engine{
		Posts:       postsRepo,
		Comments:    commentsRepo,
		Communities: communitiesRepo,
		Flairs:      flairsRepo,
		Users:       userRepo,
		Logger:      logger,
	}
	treeSvc := &tree.Service{Comments: commentsRepo}

	userHandler := &handlers.UserHandler{
		Sm:      sm,
		Repo:    userRepo,
		Cascade: engine,
		Logger:  logger,
	}
	communityHandler := &handlers.CommunityHandler{
		Repo:    communitiesRepo,
		Cascade: engine,
		Logger:  logger,
	}
	postHandler := &handlers.PostHandler{
		PostsRepo:       postsRepo,
		CommentsRepo:    commentsRepo,
		CommunitiesRepo: communitiesRepo,
		FlairsRepo:      flairsRepo,
		Tree:            treeSvc,
		Ledger:          ledger,
		Cascade:         engine,
		Logger:          logger,
	}
	commentHandler := &handlers.CommentHandler{
		CommentsRepo: commentsRepo,
		PostsRepo:    postsRepo,
		Ledger:       ledger,
		Cascade:      engine,
		Logger:       logger,
	}
	flairHandler := &handlers.FlairHandler{
		Repo:            flairsRepo,
		PostsRepo:       postsRepo,
		CommunitiesRepo: communitiesRepo,
		Logger:          logger,
	}

	api := r.PathPrefix("/api/").Subrouter()

	api.HandleFunc("/users/register", userHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", userHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/users/logout", userHandler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/users", userHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", userHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}", userHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/communities", communityHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/communities", communityHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/communities/creator/{displayName}", communityHandler.GetByCreator).Methods(http.MethodGet)
	api.HandleFunc("/communities/{id}", communityHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/communities/{id}", communityHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/communities/{id}/join", communityHandler.Join).Methods(http.MethodPatch)
	api.HandleFunc("/communities/{id}/leave", communityHandler.Leave).Methods(http.MethodPatch)
	api.HandleFunc("/communities/{id}", communityHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/posts", postHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/posts", postHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/posts/search", postHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/posts/user/{displayName}", postHandler.GetByUser).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", postHandler.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", postHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/posts/{id}/view", postHandler.View).Methods(http.MethodPatch)
	api.HandleFunc("/posts/{id}/vote", postHandler.Vote).Methods(http.MethodPatch)
	api.HandleFunc("/posts/{id}", postHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/comments", commentHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/comments", commentHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/comments/user/{displayName}", commentHandler.GetByUser).Methods(http.MethodGet)
	api.HandleFunc("/comments/{id}", commentHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/comments/{id}/vote", commentHandler.Vote).Methods(http.MethodPatch)
	api.HandleFunc("/comments/{id}", commentHandler.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/flairs", flairHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/flairs", flairHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/flairs/{id}", flairHandler.Delete).Methods(http.MethodDelete)

	api.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteResponse(w, "not found", http.StatusNotFound)
	})

	handler := middleware.Auth(logger, sm, r)
	handler = middleware.Log(logger, handler)
	handler = middleware.Recover(logger, handler)

	srv := &http.Server{
		Handler:      handler,
		Addr:         a.ServerAddr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	a.HTTPServer = srv

	logger.Infof("Started server at %s", srv.Addr)
	log.Fatal(srv.ListenAndServe())
}

// seedAdmin makes sure the configured admin account exists. It is skipped
// when no admin password is configured.
func (a *Application) seedAdmin(repo *user.UserRepoSQL, logger *zap.SugaredLogger) {
	if a.AdminPassword == "" {
		logger.Infow("no admin password configured, skipping admin seed")
		return
	}

	existing, err := repo.GetByEmail(a.AdminEmail)
	if err != nil {
		panic(err)
	}
	if existing != nil {
		return
	}

	salt := make([]byte, 8)
	rand.Read(salt)

	admin := &user.User{
		Email:       a.AdminEmail,
		DisplayName: a.AdminDisplayName,
		Password:    handlers.HashPass(salt, a.AdminPassword),
		Reputation:  user.SeedAdminReputation,
		IsAdmin:     true,
		Created:     time.Now(),
	}

	id, err := repo.Add(admin)
	if err != nil {
		panic(err)
	}
	logger.Infow("seeded admin account", "id", id, "display_name", admin.DisplayName)
}
