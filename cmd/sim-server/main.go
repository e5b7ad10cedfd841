package main

import (
	"flag"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	notify "github.com/bitly/go-notify"
	uuid "github.com/satori/go.uuid"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/motorarena/motorarena/common/healthcheck"
	"github.com/motorarena/motorarena/common/recording"
	commontypes "github.com/motorarena/motorarena/common/types"
	"github.com/motorarena/motorarena/common/utils"
	"github.com/motorarena/motorarena/game/highway"
	"github.com/motorarena/motorarena/simserver"
	"github.com/motorarena/motorarena/vizserver"
)

var defaultTrafficSpecs = highway.VehicleSpecs{
	Mass:             1200,
	MaxSpeed:         40,
	Acceleration:     8,
	Braking:          12,
	MaxSteeringAngle: 0.6,
	DriveType:        highway.DriveRear,
	MaxHealth:        100,
}

func parseBehavior(name string) highway.Behavior {
	switch name {
	case "calm":
		return highway.BehaviorCalm
	case "aggressive":
		return highway.BehaviorAggressive
	default:
		return highway.BehaviorNormal
	}
}

func main() {
	scenarioPath := flag.String("scenario", "", "Path of the scenario JSON file")
	name := flag.String("name", "motorarena", "Simulation name")
	tps := flag.Int("tps", 60, "Ticks per second")
	vizport := flag.Int("viz-port", 8081, "Port of the viz server")
	healthport := flag.Int("health-port", 8099, "Port of the healthcheck server")
	recordDirectory := flag.String("record-dir", "", "Record files destination")
	extraVehicles := flag.Int("vehicles", 0, "Traffic vehicles spawned on top of the scenario traffic block")

	flag.Parse()

	if *scenarioPath == "" {
		utils.FailWith(bettererrors.New("Missing -scenario <path>"))
	}

	simId := uuid.NewV4().String()
	utils.SetDebugContext("simid", simId)

	simDescription, err := commontypes.NewSimDescriptionFromFile(simId, *name, *tps, *scenarioPath)
	if err != nil {
		utils.FailWith(err)
	}

	game := highway.NewHighwayGame(simDescription)

	for _, traffic := range simDescription.GetScenario().Data.Traffic {
		specs := defaultTrafficSpecs
		if traffic.MaxSpeed > 0 {
			specs.MaxSpeed = traffic.MaxSpeed
		}

		for i := 0; i < traffic.Count; i++ {
			if _, err := game.NewEntityTrafficVehicle(specs, parseBehavior(traffic.Behavior)); err != nil {
				utils.WarnWith(err)
			}
		}
	}

	for i := 0; i < *extraVehicles; i++ {
		if _, err := game.NewEntityTrafficVehicle(defaultTrafficSpecs, highway.BehaviorNormal); err != nil {
			utils.WarnWith(err)
		}
	}

	server := simserver.NewServer(simDescription, game)

	var recorder recording.Recorder = recording.MakeEmptyRecorder()
	if *recordDirectory != "" {
		recorder = recording.MakeFileRecorder(*recordDirectory)
		recorder.RecordMetadata(simId, simDescription.GetScenario())

		framechan := make(chan interface{})
		notify.Start("viz:message:"+simId, framechan)
		go func() {
			for frame := range framechan {
				if msg, ok := frame.(string); ok {
					recorder.Record(simId, msg)
				}
			}
		}()
	}

	vizservice := vizserver.NewVizService(":"+strconv.Itoa(*vizport), func() ([]commontypes.SimDescriptionInterface, error) {
		return []commontypes.SimDescriptionInterface{simDescription}, nil
	})

	go func() {
		if err := vizservice.ListenAndServe(); err != nil {
			utils.Debug("viz-server", "stopped: "+err.Error())
		}
	}()

	health := healthcheck.NewHealthCheckServer(":" + strconv.Itoa(*healthport))
	health.Register("roadnetwork", func() (error, bool) {
		return nil, game.GetNetwork().Size() > 0
	})
	health.Register("ticking", func() (error, bool) {
		return nil, server.GetTickNum() > 0
	})
	health.Start()

	sigchan := make(chan os.Signal, 1)
	signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigchan
		utils.Debug("sim-server", "Received shutdown signal")
		server.Stop()
		vizservice.Close()
		health.Stop()
		recorder.Close()
	}()

	utils.Debug("sim-server", "Simulation "+simId+" running "+strconv.Itoa(game.GetNetwork().Size())+" roads")

	block := server.Start()
	<-block
}
