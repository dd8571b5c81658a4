package main

import (
	"log"
	"os"
	"time"

	"github.com/omorros/SnapShelf/config"
	"github.com/omorros/SnapShelf/routes"
	"github.com/omorros/SnapShelf/services"
	"github.com/omorros/SnapShelf/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	rt := services.NewRealtimeHub()
	ps, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service disabled: %v", err)
	}
	services.InitAlertDeps(config.DB, rt, ps)

	// daily expiry sweep, unless an external scheduler hits the endpoint
	if os.Getenv("EXPIRY_SWEEP_DISABLED") != "true" {
		go func() {
			t := time.NewTicker(24 * time.Hour)
			defer t.Stop()
			for range t.C {
				mailer, err := utils.NewMailer()
				if err != nil {
					mailer = nil
				}
				if _, err := services.RunExpirySweep(mailer); err != nil {
					log.Printf("expiry sweep failed: %v", err)
				}
			}
		}()
	}

	r := routes.SetupRouter(rt)
	r.Run(":8080")
}
