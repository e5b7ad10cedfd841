package handler

import (
	"log"
	"net/http"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/motorarena/motorarena/common/utils"
	"github.com/motorarena/motorarena/vizserver/types"
)

type wsincomingmessage struct {
	messageType int
	p           []byte
	err         error
}

func Websocket(sims *types.VizSimMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		sim := sims.Get(vars["id"])

		if sim == nil {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("SIM NOT FOUND !"))
			return
		}

		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		watcher := types.NewWatcher(c)
		sim.SetWatcher(watcher)

		defer func(c *websocket.Conn) {
			sim.RemoveWatcher(watcher.GetId())
			c.Close()
		}(c)

		clientclosedsocket := make(chan bool)
		c.SetCloseHandler(func(code int, text string) error {
			clientclosedsocket <- true
			return nil
		})

		// Mandatory to notice when the websocket is closed client side
		incomingmsg := make(chan wsincomingmessage)
		go func(client *websocket.Conn, ch chan wsincomingmessage) {
			messageType, p, err := client.ReadMessage()
			ch <- wsincomingmessage{messageType, p, err}
		}(c, incomingmsg)

		vizmsgchan := make(chan interface{})
		notify.Start("viz:message:"+sim.GetId(), vizmsgchan)
		defer notify.Stop("viz:message:"+sim.GetId(), vizmsgchan)

		for {
			select {
			case <-clientclosedsocket:
				{
					utils.Debug("viz-server", "Watcher "+watcher.GetId()+" closed its socket")
					return
				}
			case <-incomingmsg:
				{
					// consume and ignore; watchers are read-only
				}
			case vizmsg := <-vizmsgchan:
				{
					vizmsgString, ok := vizmsg.(string)
					utils.Assert(ok, "Failed to cast vizmessage into string")

					c.WriteMessage(websocket.TextMessage, []byte("{\"type\":\"framebatch\", \"data\": "+vizmsgString+"}"))
				}
			}
		}
	}
}
