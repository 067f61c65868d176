package router

import (
	"time"

	"github.com/vanozi/superleuk-backend/internal/config"
	"github.com/vanozi/superleuk-backend/internal/handler"
	"github.com/vanozi/superleuk-backend/internal/infra"
	"github.com/vanozi/superleuk-backend/internal/middleware"
	"github.com/vanozi/superleuk-backend/internal/repository"
	"github.com/vanozi/superleuk-backend/internal/service"
	"github.com/vanozi/superleuk-backend/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	allowedUserRepo := repository.NewAllowedUserRepository(db)
	workingHoursRepo := repository.NewWorkingHoursRepository(db)
	vakantieRepo := repository.NewVakantieRepository(db)
	machineRepo := repository.NewMachineRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	tankRepo := repository.NewTankTransactionRepository(db)
	deviceLoginRepo := repository.NewDeviceLoginRepository(db)
	bouwPlanRepo := repository.NewBouwPlanRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, roleRepo, allowedUserRepo, deviceLoginRepo, mailer, cfg)
	allowedUsersSvc := service.NewAllowedUsersService(allowedUserRepo, userRepo, mailer, dispatcher)
	usersSvc := service.NewUsersService(userRepo, roleRepo)
	rolesSvc := service.NewRolesService(roleRepo)
	workingHoursSvc := service.NewWorkingHoursService(workingHoursRepo, userRepo)
	vakantiesSvc := service.NewVakantiesService(vakantieRepo, userRepo)
	machinesSvc := service.NewMachinesService(machineRepo, maintenanceRepo, tankRepo)
	maintenanceSvc := service.NewMaintenanceService(maintenanceRepo, machineRepo)
	tankSvc := service.NewTankService(tankRepo)
	bouwPlanSvc := service.NewBouwPlanService(bouwPlanRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	ionicH := handler.NewIonicHandler(authSvc)
	allowedUsersH := handler.NewAllowedUsersHandler(allowedUsersSvc)
	usersH := handler.NewUsersHandler(usersSvc)
	rolesH := handler.NewRolesHandler(rolesSvc)
	workingHoursH := handler.NewWorkingHoursHandler(workingHoursSvc)
	vakantiesH := handler.NewVakantiesHandler(vakantiesSvc)
	machinesH := handler.NewMachinesHandler(machinesSvc)
	maintenanceH := handler.NewMaintenanceHandler(maintenanceSvc)
	tankH := handler.NewTankTransactionsHandler(tankSvc)
	bouwPlanH := handler.NewBouwPlanHandler(bouwPlanSvc)

	jwtMW := middleware.JWTAuth(cfg.SecretKey, userRepo)
	adminOnly := middleware.RequireRole("admin")

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	for _, prefix := range []string{"/v1/auth", "/v2/auth"} {
		auth := r.Group(prefix)
		{
			auth.POST("/register", authH.Register)
			auth.POST("/activate_account", authH.ActivateAccount)
			auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
			auth.POST("/refresh", authH.Refresh)
		}
	}

	// Device flow for the mobile app
	ionic := r.Group("/v1/ionic")
	{
		ionic.POST("/login", middleware.LoginRateLimiter(), ionicH.Login)
		ionic.GET("/device_id_status", ionicH.DeviceStatus)
		ionic.POST("/logout", jwtMW, ionicH.Logout)
	}

	// ── v1 ───────────────────────────────────────────────────────────────────
	v1 := r.Group("/v1", jwtMW)
	{
		users := v1.Group("/users")
		{
			users.GET("/me", usersH.Me)
			users.PUT("/me", usersH.UpdateMe)
			users.GET("", adminOnly, usersH.List)
		}

		allowed := v1.Group("/allowed_users", adminOnly)
		{
			allowed.POST("", allowedUsersH.Create)
			allowed.GET("", allowedUsersH.List)
			allowed.GET("/:id", allowedUsersH.Get)
			allowed.PUT("/:id", allowedUsersH.Update)
			allowed.DELETE("/:id", allowedUsersH.Delete)
		}

		wh := v1.Group("/working_hours")
		{
			wh.PUT("", workingHoursH.Upsert)
			wh.GET("/all", workingHoursH.ListMine)
			wh.GET("/all_for_user/:user_id", adminOnly, workingHoursH.ListForUser)
			wh.GET("/between_dates", workingHoursH.ListBetween)
			wh.GET("/my_week_overview", workingHoursH.MyWeekOverview)
			wh.GET("/week_overview", adminOnly, workingHoursH.WeekOverviewForUser)
			wh.GET("/admin/week_overview", adminOnly, workingHoursH.AdminWeekOverview)
			wh.GET("/year_overview", workingHoursH.MyYearOverview)
			wh.GET("/month_overview_for_year", workingHoursH.MonthOverviewForYear)
			wh.GET("/:id", workingHoursH.Get)
			wh.DELETE("/:id", workingHoursH.Delete)
		}

		machines := v1.Group("/machines")
		{
			machines.GET("", machinesH.List)
			machines.GET("/:id", machinesH.Get)
			machines.POST("", middleware.RequireRole("admin", "monteur"), machinesH.Create)
			machines.PUT("", middleware.RequireRole("admin", "monteur"), machinesH.Update)
			machines.DELETE("/:id", middleware.RequireRole("admin", "monteur"), machinesH.Delete)
		}

		maintenance := v1.Group("/machine_maintenance_issues")
		{
			maintenance.POST("", maintenanceH.Create)
			maintenance.PUT("", maintenanceH.Update)
			maintenance.GET("", maintenanceH.List)
			maintenance.GET("/:id", maintenanceH.Get)
			maintenance.DELETE("/:id", maintenanceH.Delete)
		}

		bouwplan := v1.Group("/bouwplan")
		{
			bouwplan.GET("", bouwPlanH.List)
			bouwplan.GET("/:id", bouwPlanH.Get)
			bouwplan.POST("", adminOnly, bouwPlanH.Create)
			bouwplan.PUT("/:id", adminOnly, bouwPlanH.Update)
			bouwplan.DELETE("/:id", adminOnly, bouwPlanH.Delete)
		}

		tank := v1.Group("/tank_transactions")
		{
			tank.POST("", adminOnly, tankH.Create)
			tank.GET("", tankH.List)
			tank.GET("/summed_quantity/between_dates", tankH.SummedQuantity)
			tank.GET("/vehicle/:vehicle", tankH.ListByVehicle)
			tank.GET("/:id", tankH.Get)
			tank.DELETE("/:id", adminOnly, tankH.Delete)
		}

		vakanties := v1.Group("/vakanties")
		{
			vakanties.POST("", vakantiesH.Create)
			vakanties.POST("/admin/add_vakantie_for_user", adminOnly, vakantiesH.CreateForUser)
			vakanties.GET("", middleware.RequireRole("werknemer"), vakantiesH.ListMine)
			vakanties.GET("/all", adminOnly, vakantiesH.ListAll)
			vakanties.GET("/all_between_dates", middleware.RequireRole("admin", "werknemer", "monteur"), vakantiesH.ListBetween)
			vakanties.DELETE("/:id", middleware.RequireRole("werknemer"), vakantiesH.Delete)
		}
	}

	// ── v2 ───────────────────────────────────────────────────────────────────
	v2 := r.Group("/v2", jwtMW)
	{
		users := v2.Group("/users")
		{
			users.GET("/me", usersH.Me)
			users.PUT("/me", usersH.UpdateMe)
		}

		allowed := v2.Group("/allowed_users", adminOnly)
		{
			allowed.POST("", allowedUsersH.CreateAsync)
			allowed.GET("", allowedUsersH.List)
			allowed.GET("/:id", allowedUsersH.Get)
			allowed.PUT("/:id", allowedUsersH.Update)
			allowed.DELETE("/:id", allowedUsersH.Delete)
		}

		wh := v2.Group("/working_hours")
		{
			wh.PUT("", workingHoursH.Upsert)
			wh.GET("/all", workingHoursH.ListMine)
			wh.GET("/between_dates", workingHoursH.ListBetween)
			wh.GET("/week_overview", workingHoursH.MyWeekOverview)
			wh.GET("/year_overview", workingHoursH.MyYearOverview)
			wh.GET("/year_overview/pdf", workingHoursH.YearOverviewPDF)
		}

		vakanties := v2.Group("/vakanties")
		{
			vakanties.GET("/resources", vakantiesH.Resources)
			vakanties.POST("", vakantiesH.Create)
			vakanties.POST("/admin/add_vakantie_for_user", adminOnly, vakantiesH.CreateForUser)
			vakanties.GET("/all_for_me", middleware.RequireRole("werknemer"), vakantiesH.ListMine)
			vakanties.GET("/all", middleware.RequireRole("admin", "werknemer"), vakantiesH.CalendarEvents)
			vakanties.GET("/all_between_dates", middleware.RequireRole("admin", "werknemer", "monteur"), vakantiesH.ListBetween)
			vakanties.DELETE("/:id", middleware.RequireRole("werknemer"), vakantiesH.Delete)
		}

		admin := v2.Group("/admin", adminOnly)
		{
			adminWH := admin.Group("/working_hours")
			{
				adminWH.GET("/year_overview", workingHoursH.YearOverviewForUser)
				adminWH.GET("/week_overview", workingHoursH.WeekOverviewForUser)
				adminWH.PUT("/release", workingHoursH.Release)
			}

			adminRoles := admin.Group("/roles")
			{
				adminRoles.POST("", rolesH.Create)
				adminRoles.GET("", rolesH.List)
				adminRoles.DELETE("/:id", rolesH.Delete)
			}

			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", usersH.List)
				adminUsers.GET("/:id", usersH.Get)
				adminUsers.PUT("/:id", usersH.Update)
				adminUsers.DELETE("/:id", usersH.Delete)
				adminUsers.POST("/add_role_to_user", usersH.AddRole)
				adminUsers.POST("/remove_role_from_user", usersH.RemoveRole)
			}

			admin.PUT("/address/:user_id", usersH.UpsertAddress)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
