package vizserver

import (
	"net/http"
	"os"

	"log"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	commontypes "github.com/motorarena/motorarena/common/types"
	apphandler "github.com/motorarena/motorarena/vizserver/handler"
	"github.com/motorarena/motorarena/vizserver/types"
)

type FetchSimsCbk func() ([]commontypes.SimDescriptionInterface, error)

// VizService exposes running simulations to websocket watchers. It is a
// pure reader of the simulation core.
type VizService struct {
	addr      string
	fetchSims FetchSimsCbk
	listener  *http.Server
}

func NewVizService(addr string, fetchSims FetchSimsCbk) *VizService {
	return &VizService{
		addr:      addr,
		fetchSims: fetchSims,
	}
}

func (viz *VizService) ListenAndServe() error {

	sims, err := viz.fetchSims()
	if err != nil {
		return err
	}

	vizsims := types.NewVizSimMap()
	for _, sim := range sims {
		vizsims.Set(
			sim.GetId(),
			types.NewVizSim(sim),
		)
	}

	logger := os.Stdout
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(vizsims)),
	)).Methods("GET")

	router.Handle("/sim/{id:[a-zA-Z0-9\\-]+}/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(vizsims)),
	)).Methods("GET")

	log.Println("VIZ Listening on " + viz.addr)

	viz.listener = &http.Server{
		Addr:    viz.addr,
		Handler: router,
	}

	return viz.listener.ListenAndServe()
}

func (viz *VizService) Close() {
	if viz.listener != nil {
		viz.listener.Close()
	}
}
