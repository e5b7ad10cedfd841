package healthcheck

import (
	"encoding/json"
	"net/http"

	"github.com/motorarena/motorarena/common/utils"
)

type HealthCheckHandler func() (err error, ok bool)

type HealthCheckServer struct {
	checkers map[string]HealthCheckHandler
	addr     string
	listener *http.Server
}

type HealthCheck struct {
	Name   string
	Status bool
}

type HealthCheckHttpResponse struct {
	Checks     []HealthCheck
	StatusCode int
}

func NewHealthCheckServer(addr string) *HealthCheckServer {
	return &HealthCheckServer{
		checkers: make(map[string]HealthCheckHandler),
		addr:     addr,
	}
}

func (server *HealthCheckServer) Register(name string, handler HealthCheckHandler) {
	server.checkers[name] = handler
}

func (server *HealthCheckServer) httpHandler(w http.ResponseWriter, r *http.Request) {
	res := HealthCheckHttpResponse{
		Checks:     make([]HealthCheck, 0),
		StatusCode: 200,
	}

	for name, checker := range server.checkers {
		err, ok := checker()

		if err != nil || !ok {
			res.StatusCode = http.StatusInternalServerError
		}

		res.Checks = append(res.Checks, HealthCheck{
			Name:   name,
			Status: err == nil && ok,
		})
	}

	data, err := json.Marshal(res)
	utils.Check(err, "Failed to marshal healthcheck response")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	w.Write(data)
}

func (server *HealthCheckServer) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", server.httpHandler)

	server.listener = &http.Server{
		Addr:    server.addr,
		Handler: mux,
	}

	go func() {
		utils.Debug("healthcheck", "Listening on "+server.addr)
		server.listener.ListenAndServe()
	}()
}

func (server *HealthCheckServer) Stop() {
	if server.listener != nil {
		server.listener.Close()
	}
}
