package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/midiwire/model"
	"github.com/jsphweid/midiwire/parser"
	"github.com/jsphweid/midiwire/util"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `serves`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func HandleDecode(w http.ResponseWriter, r *http.Request) {
	reqBody, err := ioutil.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}

	var input model.DecodeRequestBody
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		fmt.Println("Could not unmarshal request body: " + err.Error())
		http.Error(w, "Body must be JSON with a `bytes` hex string", 400)
		return
	}

	raw, err := util.ParseHexDump(input.Bytes)
	if err != nil {
		http.Error(w, "`bytes` must be a hex dump", 400)
		return
	}

	p := parser.New()
	res := make([]model.DecodedEvent, 0)
	for _, b := range raw {
		if evt, ok := p.Parse(b); ok {
			res = append(res, toDecodedEvent(evt))
		}
	}
	json.NewEncoder(w).Encode(res)
}

func toDecodedEvent(e model.Event) model.DecodedEvent {
	de := model.DecodedEvent{
		Type:    e.Type.String(),
		Channel: e.Channel,
		Data:    e.Data,
	}
	switch e.Type {
	case model.SystemCommon:
		de.Subtype = e.SCType.String()
		if e.SCType == model.SystemExclusive {
			c := e.AsSystemExclusive().Chunk
			buf := make([]byte, c.Size())
			n := c.ReadBytes(buf)
			de.Sysex = hex.EncodeToString(buf[:n])
		}
	case model.SystemRealTime:
		de.Subtype = e.SRTType.String()
	case model.ChannelMode:
		de.Subtype = e.CMType.String()
	}
	return de
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/decode", HandleDecode).Methods("POST")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
