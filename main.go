package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
	"github.com/retro-maze/maze-api/api"
	gameapi "github.com/retro-maze/maze-api/api/game"
	api_i "github.com/retro-maze/maze-api/api/i"
	"github.com/retro-maze/maze-api/api/identity"
	"github.com/retro-maze/maze-api/config"
	"github.com/retro-maze/maze-api/infrastruture/leaderboard"
	"github.com/retro-maze/maze-api/infrastruture/repo"
	"github.com/retro-maze/maze-api/infrastruture/statfile"
	"github.com/retro-maze/maze-api/infrastruture/token"
	"github.com/retro-maze/maze-api/service"
	"github.com/retro-maze/maze-api/service/i"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient       *mongo.Client
	redisClient       *redis.Client
	playerRepo        i.PlayerRepo
	statsRepo         i.StatsRepo
	boardService      i.Leaderboard
	statsSink         i.StatsSink
	sessionManager    i.GameSessionManager
	jwtTokenizer      i.Tokenizer
	authService       i.Authenticator
	authController    api_i.Controller
	sessionController api_i.Controller
	router            *api.Router
	appLogger         *log.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Failed to connect to MongoDB: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Printf("%s[ERROR]%s MongoDB ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Connected to MongoDB", config.LogInfoColor, config.LogColorReset)
}

func initRedis(ctx context.Context) {
	addr := fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort)
	redisClient = redis.NewClient(&redis.Options{Addr: addr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Printf("%s[ERROR]%s Redis ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Connected to Redis", config.LogInfoColor, config.LogColorReset)
}

func initRepos() {
	playerRepo = repo.NewPlayerRepo(mongoClient, config.Envs.DBName, "players")
	statsRepo = repo.NewStatsRepo(mongoClient, config.Envs.DBName, "game_stats")
	appLogger.Printf("%s[INFO]%s Repositories initialized", config.LogInfoColor, config.LogColorReset)
}

func initLeaderboard() {
	var err error
	boardService, err = leaderboard.NewRedisLeaderboard(redisClient)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating leaderboard: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Leaderboard initialized", config.LogInfoColor, config.LogColorReset)
}

func initStatsSink() {
	var err error
	statsSink, err = statfile.NewJSONSink(config.Envs.StatsDir)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating stats sink: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Stats sink initialized at %s", config.LogInfoColor, config.LogColorReset, config.Envs.StatsDir)
}

func initSessionManager() {
	sessionLogger := log.New(os.Stdout, fmt.Sprintf("%sSESSION-MANAGER%s ", config.ColorCyan, config.ColorReset), log.LstdFlags)

	var err error
	sessionManager, err = service.NewGameSessionManager(&service.SessionManagerConfig{
		PlayerRepo:  playerRepo,
		StatsRepo:   statsRepo,
		Leaderboard: boardService,
		StatsSink:   statsSink,
		Logger:      sessionLogger,
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating session manager: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Session manager initialized", config.LogInfoColor, config.LogColorReset)
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Printf("%s[INFO]%s JWT Tokenizer initialized", config.LogInfoColor, config.LogColorReset)
}

func initAuthService() {
	authService = service.NewAuth(playerRepo, jwtTokenizer)
	appLogger.Printf("%s[INFO]%s Auth service initialized", config.LogInfoColor, config.LogColorReset)
}

func initAuthController() {
	authController = identity.NewIdentityServer(authService)
	appLogger.Printf("%s[INFO]%s Auth controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initSessionController() {
	var err error
	sessionController, err = gameapi.NewSessionController(sessionManager, boardService)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating session controller: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Session controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, sessionController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Printf("%s[INFO]%s Router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	appLogger = log.New(os.Stdout, fmt.Sprintf("%sAPP%s ", config.ColorBlue, config.ColorReset), log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	initRepos()
	initLeaderboard()
	initStatsSink()
	initSessionManager()
	initJWTTokenizer()
	initAuthService()
	initAuthController()
	initSessionController()
	initRouter(jwtTokenizer)

	appLogger.Printf("%s[INFO]%s Starting REST server on %s:%d", config.LogInfoColor, config.LogColorReset, config.Envs.HostIP, config.Envs.RESTPort)
	if err := router.Run(); err != nil {
		appLogger.Printf("%s[ERROR]%s REST server stopped: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}
