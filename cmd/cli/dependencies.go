package cli

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/auth"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/config"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/controllers"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/email"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/export"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/managers"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/payments"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/repositories"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/scheduler"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/server"
	"github.com/mateenqamar1122/Hyperlans-sub002/internal/storage"

	aiassistant "github.com/mateenqamar1122/Hyperlans-sub002/internal/assistant"
)

// AppDependencies contains everything the serve command needs to run.
type AppDependencies struct {
	TokenIssuer *auth.TokenIssuer
	Server      server.HTTPServerDependencies
	Scheduler   *scheduler.Scheduler
}

// BuildAppDependencies wires repositories, managers and controllers.
func BuildAppDependencies(ctx context.Context, cfg *config.Config) (*AppDependencies, error) {
	database, err := repositories.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, err
	}

	repositories.EnsureIndexes(ctx, database)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
	})

	storageGateway, err := storageGatewayFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	tokenIssuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL())
	if err != nil {
		return nil, err
	}

	languageModel, err := languageModelFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	fileRepository := repositories.NewFileRepository(database)
	categoryRepository := repositories.NewCategoryRepository(database)
	shareRepository := repositories.NewShareRepository(database)
	userRepository := repositories.NewUserRepository(database)
	clientRepository := repositories.NewClientRepository(database)
	projectRepository := repositories.NewProjectRepository(database)
	invoiceRepository := repositories.NewInvoiceRepository(database)
	expenseRepository := repositories.NewExpenseRepository(database)
	taskRepository := repositories.NewTaskRepository(database)
	portfolioRepository := repositories.NewPortfolioRepository(database)
	conversationRepository := repositories.NewConversationRepository(database)

	fileService := managers.NewFileManager(managers.FileManagerDependencies{
		FileRepository:     fileRepository,
		CategoryRepository: categoryRepository,
		StorageGateway:     storageGateway,
	})

	categoryService := managers.NewCategoryManager(managers.CategoryManagerDependencies{
		CategoryRepository: categoryRepository,
		FileRepository:     fileRepository,
	})

	shareService := managers.NewShareManager(managers.ShareManagerDependencies{
		ShareRepository: shareRepository,
		FileRepository:  fileRepository,
		PublicBaseURL:   cfg.PublicBaseURL,
	})

	authService := managers.NewAuthManager(managers.AuthManagerDependencies{
		UserRepository: userRepository,
		TokenIssuer:    tokenIssuer,
	})

	clientService := managers.NewClientManager(managers.ClientManagerDependencies{
		ClientRepository:  clientRepository,
		ProjectRepository: projectRepository,
	})

	projectService := managers.NewProjectManager(managers.ProjectManagerDependencies{
		ProjectRepository: projectRepository,
		ClientRepository:  clientRepository,
	})

	invoiceService := managers.NewInvoiceManager(managers.InvoiceManagerDependencies{
		InvoiceRepository: invoiceRepository,
		ClientRepository:  clientRepository,
		EmailSender: email.NewResendSender(email.ResendSenderDependencies{
			APIKey:      cfg.ResendAPIKey,
			FromAddress: cfg.EmailFrom,
		}),
		PaymentLinks: payments.NewStripeIssuer(payments.StripeIssuerDependencies{
			SecretKey:  cfg.StripeAPIKey,
			SuccessURL: cfg.StripeSuccessURL,
		}),
	})

	expenseService := managers.NewExpenseManager(managers.ExpenseManagerDependencies{
		ExpenseRepository: expenseRepository,
	})

	taskService := managers.NewTaskManager(managers.TaskManagerDependencies{
		TaskRepository: taskRepository,
	})

	portfolioService := managers.NewPortfolioManager(managers.PortfolioManagerDependencies{
		PortfolioRepository: portfolioRepository,
		PDFRenderer: export.NewPDFClient(export.PDFClientDependencies{
			Endpoint: cfg.PDFEndpoint,
			APIKey:   cfg.PDFAPIKey,
		}),
	})

	assistantService := managers.NewAssistantManager(managers.AssistantManagerDependencies{
		ConversationRepository: conversationRepository,
		LanguageModel:          languageModel,
	})

	dashboardService := managers.NewDashboardManager(managers.DashboardManagerDependencies{
		ClientRepository:  clientRepository,
		ProjectRepository: projectRepository,
		InvoiceRepository: invoiceRepository,
		ExpenseRepository: expenseRepository,
		TaskRepository:    taskRepository,
		RedisClient:       redisClient,
	})

	serverDeps := server.HTTPServerDependencies{
		TokenIssuer: tokenIssuer,
		AuthController: controllers.NewAuthController(controllers.AuthControllerDependencies{
			AuthService: authService,
		}),
		FileController: controllers.NewFileController(controllers.FileControllerDependencies{
			FileService:     fileService,
			CategoryService: categoryService,
		}),
		ShareController: controllers.NewShareController(controllers.ShareControllerDependencies{
			ShareService: shareService,
		}),
		ClientController: controllers.NewClientController(controllers.ClientControllerDependencies{
			ClientService: clientService,
		}),
		ProjectController: controllers.NewProjectController(controllers.ProjectControllerDependencies{
			ProjectService: projectService,
		}),
		InvoiceController: controllers.NewInvoiceController(controllers.InvoiceControllerDependencies{
			InvoiceService: invoiceService,
		}),
		ExpenseController: controllers.NewExpenseController(controllers.ExpenseControllerDependencies{
			ExpenseService: expenseService,
		}),
		TaskController: controllers.NewTaskController(controllers.TaskControllerDependencies{
			TaskService: taskService,
		}),
		PortfolioController: controllers.NewPortfolioController(controllers.PortfolioControllerDependencies{
			PortfolioService: portfolioService,
		}),
		AssistantController: controllers.NewAssistantController(controllers.AssistantControllerDependencies{
			AssistantService: assistantService,
		}),
		DashboardController: controllers.NewDashboardController(controllers.DashboardControllerDependencies{
			DashboardService: dashboardService,
		}),
	}

	maintenance := scheduler.NewScheduler(scheduler.SchedulerDependencies{
		ShareService:   shareService,
		InvoiceService: invoiceService,
	})

	return &AppDependencies{
		TokenIssuer: tokenIssuer,
		Server:      serverDeps,
		Scheduler:   maintenance,
	}, nil
}

func storageGatewayFromConfig(cfg *config.Config) (domain.StorageGateway, error) {
	return storage.NewS3Gateway(storage.S3GatewayDependencies{
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Bucket:          cfg.S3Bucket,
		PublicBaseURL:   cfg.S3PublicBaseURL,
	})
}

func languageModelFromConfig(cfg *config.Config) (domain.LanguageModel, error) {
	switch cfg.AssistantProvider {
	case "anthropic":
		return aiassistant.NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel), nil
	case "openai":
		return aiassistant.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	default:
		return nil, fmt.Errorf("unknown assistant provider: %s", cfg.AssistantProvider)
	}
}
