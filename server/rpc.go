package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/tailored-agentic-units/janken/match"
)

// Connect procedures of the GameService. Messages are google.protobuf.Struct
// values carrying the same fields as the REST API.
const (
	GameServiceName    = "janken.v1.GameService"
	StartGameProcedure = "/" + GameServiceName + "/StartGame"
	PlayProcedure      = "/" + GameServiceName + "/Play"
	HistoryProcedure   = "/" + GameServiceName + "/History"
)

func (s *Server) rpcHandlers() map[string]http.Handler {
	return map[string]http.Handler{
		StartGameProcedure: connect.NewUnaryHandler(StartGameProcedure, s.startGameRPC),
		PlayProcedure:      connect.NewUnaryHandler(PlayProcedure, s.playRPC),
		HistoryProcedure:   connect.NewUnaryHandler(HistoryProcedure, s.historyRPC),
	}
}

func (s *Server) startGameRPC(ctx context.Context, _ *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	id, err := s.svc.StartSession(ctx)
	if err != nil {
		return nil, connect.NewError(codeOf(err), err)
	}
	return structResponse(startResponse{GameID: id, Message: startMessage})
}

func (s *Server) playRPC(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	result, err := s.svc.Play(ctx, match.PlayRequest{
		SessionID: stringField(req.Msg, "game_id"),
		Move:      stringField(req.Msg, "player_choice"),
		Player:    stringField(req.Msg, "ai_player"),
		Language:  stringField(req.Msg, "language"),
	})
	if err != nil {
		return nil, connect.NewError(codeOf(err), err)
	}
	return structResponse(newPlayResponse(result))
}

func (s *Server) historyRPC(ctx context.Context, req *connect.Request[structpb.Struct]) (*connect.Response[structpb.Struct], error) {
	history, err := s.svc.History(ctx, stringField(req.Msg, "game_id"))
	if err != nil {
		return nil, connect.NewError(codeOf(err), err)
	}
	return structResponse(newHistoryResponse(history))
}

func stringField(msg *structpb.Struct, name string) string {
	return msg.GetFields()[name].GetStringValue()
}

// structResponse converts a REST response value into a Struct through its
// JSON encoding, so both surfaces share one field vocabulary.
func structResponse(v any) (*connect.Response[structpb.Struct], error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to encode response: %w", err))
	}

	msg := &structpb.Struct{}
	if err := protojson.Unmarshal(data, msg); err != nil {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("failed to encode response: %w", err))
	}
	return connect.NewResponse(msg), nil
}
