package main

import (
	"go.uber.org/zap"

	"github.com/Shnickelbob/Fall-2025-MacroPal/config"
	"github.com/Shnickelbob/Fall-2025-MacroPal/controllers"
	"github.com/Shnickelbob/Fall-2025-MacroPal/routes"
	"github.com/Shnickelbob/Fall-2025-MacroPal/services"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load(log)

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	days, err := services.NewDayKeys(cfg.DayKeyTZ)
	if err != nil {
		log.Fatal("day-key timezone invalid", zap.Error(err))
	}

	hub := services.NewRealtimeHub()
	goalSvc := services.NewGoalService(db)
	logSvc := services.NewLogService(db, days, goalSvc, hub)
	authSvc := services.NewAuthService(db, []byte(cfg.JWTSecret))
	foodSvc := services.NewFoodService(db)
	recipeSvc := services.NewRecipeService(db, logSvc)
	savedSvc := services.NewSavedService(db)

	r := routes.SetupRouter(routes.Deps{
		Log:       log,
		JWTSecret: []byte(cfg.JWTSecret),
		Health:    controllers.NewHealthController(db, log),
		Auth:      controllers.NewAuthController(authSvc, log),
		LogCtl:    controllers.NewLogController(logSvc, log),
		Goals:     controllers.NewGoalController(goalSvc, log),
		Foods:     controllers.NewFoodController(foodSvc, log),
		Recipes:   controllers.NewRecipeController(recipeSvc, log),
		Saved:     controllers.NewSavedController(savedSvc, log),
		Realtime:  controllers.NewRealtimeController(hub),
	})

	log.Info("macropal backend listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
