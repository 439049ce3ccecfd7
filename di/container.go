package di

import (
	"context"
	"log/slog"

	"quill/config"
	"quill/driver/local_posts"
	"quill/driver/notion_client"
	"quill/driver/user_db"
	"quill/gateway/collection_admin_gateway"
	"quill/gateway/local_posts_gateway"
	"quill/gateway/remote_posts_gateway"
	"quill/gateway/session_gateway"
	"quill/job"
	"quill/port/session_port"
	"quill/port/user_repository_port"
	"quill/usecase/admin_usecase"
	"quill/usecase/article_usecase"
	"quill/usecase/auth_usecase"
	"quill/usecase/fetch_posts_usecase"
	"quill/usecase/provision_database_usecase"
	"quill/usecase/search_posts_usecase"
)

// ApplicationComponents wires drivers, gateways, usecases and workers.
type ApplicationComponents struct {
	Config *config.Config
	Logger *slog.Logger

	UserRepository user_repository_port.UserRepositoryPort
	SessionService session_port.SessionServicePort

	FetchPostsUsecase     *fetch_posts_usecase.FetchPostsUsecase
	SearchPostsUsecase    *search_posts_usecase.SearchPostsUsecase
	CreateArticleUsecase  *article_usecase.CreateArticleUsecase
	UpdateArticleUsecase  *article_usecase.UpdateArticleUsecase
	ArchiveArticleUsecase *article_usecase.ArchiveArticleUsecase
	GetArticleUsecase     *article_usecase.GetArticleUsecase
	ListArticlesUsecase   *article_usecase.ListArticlesUsecase
	ProvisionUsecase      *provision_database_usecase.ProvisionDatabaseUsecase
	AuthUsecase           *auth_usecase.AuthUsecase
	AdminUsecase          *admin_usecase.AdminUsecase

	ProvisionWorker *job.ProvisionWorker
	CacheWarmer     *job.CacheWarmer
}

// NewApplicationComponents builds the full dependency graph. The user
// store is postgres when DATABASE_URL is set, otherwise in-memory.
func NewApplicationComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*ApplicationComponents, error) {
	var users user_repository_port.UserRepositoryPort
	if cfg.DatabaseURL != "" {
		repo, err := user_db.NewPostgresUserRepository(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		users = repo
	} else {
		users = user_db.NewMemoryUserRepository()
	}

	localDriver := local_posts.NewLocalPostsDriver(cfg.Content.Dir, logger)
	localGateway := local_posts_gateway.NewLocalPostsGateway(localDriver, logger)

	workspaceClient := notion_client.NewNotionClient(cfg, logger)
	remoteGateway := remote_posts_gateway.NewRemotePostsGateway(workspaceClient, users, cfg, logger)
	adminGateway := collection_admin_gateway.NewCollectionAdminGateway(workspaceClient, cfg, logger)

	sessionGateway := session_gateway.NewSessionGateway(cfg)

	fetchPosts := fetch_posts_usecase.NewFetchPostsUsecase(localGateway, remoteGateway, cfg, logger)
	searchPosts := search_posts_usecase.NewSearchPostsUsecase(localGateway, logger)
	provision := provision_database_usecase.NewProvisionDatabaseUsecase(users, adminGateway, logger)

	createArticle := article_usecase.NewCreateArticleUsecase(remoteGateway, provision, fetchPosts, logger)
	updateArticle := article_usecase.NewUpdateArticleUsecase(remoteGateway, fetchPosts, logger)
	archiveArticle := article_usecase.NewArchiveArticleUsecase(remoteGateway, fetchPosts, logger)
	getArticle := article_usecase.NewGetArticleUsecase(remoteGateway, fetchPosts, logger)
	listArticles := article_usecase.NewListArticlesUsecase(remoteGateway, logger)

	provisionWorker := job.NewProvisionWorker(provision, logger)
	cacheWarmer := job.NewCacheWarmer(remoteGateway, cfg.Jobs.CacheWarmSchedule, logger)

	authUsecase := auth_usecase.NewAuthUsecase(users, sessionGateway, provisionWorker, logger)
	adminUsecase := admin_usecase.NewAdminUsecase(users, remoteGateway, logger)

	return &ApplicationComponents{
		Config: cfg,
		Logger: logger,

		UserRepository: users,
		SessionService: sessionGateway,

		FetchPostsUsecase:     fetchPosts,
		SearchPostsUsecase:    searchPosts,
		CreateArticleUsecase:  createArticle,
		UpdateArticleUsecase:  updateArticle,
		ArchiveArticleUsecase: archiveArticle,
		GetArticleUsecase:     getArticle,
		ListArticlesUsecase:   listArticles,
		ProvisionUsecase:      provision,
		AuthUsecase:           authUsecase,
		AdminUsecase:          adminUsecase,

		ProvisionWorker: provisionWorker,
		CacheWarmer:     cacheWarmer,
	}, nil
}
