package simserver

import (
	"strconv"
	"time"

	notify "github.com/bitly/go-notify"
	uuid "github.com/satori/go.uuid"

	commontypes "github.com/motorarena/motorarena/common/types"
	"github.com/motorarena/motorarena/common/utils"
	"github.com/motorarena/motorarena/game/common"
)

// Server drives a game at a fixed tick rate. All simulation mutation
// happens on the ticking goroutine; consumers receive frames through
// go-notify topics.
type Server struct {
	uuid           string
	stopticking    chan struct{}
	tickspersec    int
	ticknum        int
	simDescription commontypes.SimDescriptionInterface
	game           common.GameInterface
}

func NewServer(simDescription commontypes.SimDescriptionInterface, game common.GameInterface) *Server {
	return &Server{
		uuid:           uuid.NewV4().String(),
		stopticking:    make(chan struct{}),
		tickspersec:    simDescription.GetTps(),
		simDescription: simDescription,
		game:           game,
	}
}

func (server *Server) GetUUID() string {
	return server.uuid
}

func (server *Server) GetTicksPerSecond() int {
	return server.tickspersec
}

func (server *Server) GetTickNum() int {
	return server.ticknum
}

func (server *Server) GetGame() common.GameInterface {
	return server.game
}

func (server *Server) DoTick() {
	server.ticknum++

	dolog := (server.ticknum % server.tickspersec) == 0

	server.game.Step(server.ticknum, 1.0/float64(server.tickspersec))

	frame := server.game.ProduceVizMessageJson()
	notify.PostTimeout("viz:message:"+server.simDescription.GetId(), string(frame), time.Millisecond)

	if dolog {
		utils.Debug("sim-server", "tick "+strconv.Itoa(server.ticknum))
	}
}

func (server *Server) startTicking() {

	go func() {

		tickduration := time.Duration((1000000 / time.Duration(server.tickspersec)) * time.Microsecond)
		ticker := time.Tick(tickduration)

		for {
			select {
			case <-server.stopticking:
				{
					utils.Debug("sim-server", "Received stop ticking signal")
					notify.Post("app:stopticking", nil)
					return // exiting goroutine
				}
			case <-ticker:
				{
					server.DoTick()
				}
			}
		}
	}()
}

func (server *Server) Listen() chan interface{} {
	block := make(chan interface{})
	notify.Start("app:stopticking", block)
	return block
}

func (server *Server) Start() chan interface{} {
	utils.Debug("sim-server", "Starting simulation "+server.simDescription.GetName()+" at "+strconv.Itoa(server.tickspersec)+" tps")
	server.startTicking()
	return server.Listen()
}

func (server *Server) Stop() {
	close(server.stopticking)
}
