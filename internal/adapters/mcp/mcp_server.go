// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Hambart471/caltrack/internal/domain"
	"github.com/Hambart471/caltrack/internal/ports"
)

// Server exposes the food log over MCP using mark3labs/mcp-go, so an
// assistant can read and update the log without driving the TUI.
type Server struct {
	server *server.MCPServer
	store  ports.RecordStore
}

// NewServer creates a new MCP server over the given store.
func NewServer(store ports.RecordStore) *Server {
	s := &Server{store: store}

	s.server = server.NewMCPServer(
		"caltrack",
		"1.0.0",
		server.WithLogging(),
	)
	s.registerTools()
	return s
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"get_day",
			mcp.WithDescription("Get the logged foods, nutrient totals, and daily goals for a day"),
			mcp.WithString(
				"date",
				mcp.Description("Day to read in dd/mm/yyyy format (default: today)"),
			),
		),
		s.handleGetDay,
	)

	logFoodTool := mcp.NewTool(
		"log_food",
		mcp.WithDescription("Log a food entry with absolute nutrient values for the eaten portion"),
		mcp.WithString(
			"name",
			mcp.Required(),
			mcp.Description("Food name (truncated to 21 characters)"),
		),
		mcp.WithNumber("calories", mcp.Description("Calories for the portion")),
		mcp.WithNumber("carbs", mcp.Description("Carbohydrates in grams")),
		mcp.WithNumber("protein", mcp.Description("Protein in grams")),
		mcp.WithNumber("fat", mcp.Description("Fat in grams")),
		mcp.WithNumber("grams", mcp.Description("Portion size in grams")),
		mcp.WithString(
			"date",
			mcp.Description("Day to log against in dd/mm/yyyy format (default: today)"),
		),
	)
	s.server.AddTool(logFoodTool, s.handleLogFood)

	deleteFoodTool := mcp.NewTool(
		"delete_food",
		mcp.WithDescription("Delete a logged food entry by its position in the day's list"),
		mcp.WithNumber(
			"index",
			mcp.Required(),
			mcp.Description("Zero-based position of the entry to delete"),
		),
		mcp.WithString(
			"date",
			mcp.Description("Day to delete from in dd/mm/yyyy format (default: today)"),
		),
	)
	s.server.AddTool(deleteFoodTool, s.handleDeleteFood)

	setGoalsTool := mcp.NewTool(
		"set_goals",
		mcp.WithDescription("Replace the daily nutrient goals"),
		mcp.WithNumber("calories", mcp.Required(), mcp.Description("Daily calorie goal")),
		mcp.WithNumber("carbs", mcp.Required(), mcp.Description("Daily carbohydrate goal in grams")),
		mcp.WithNumber("protein", mcp.Required(), mcp.Description("Daily protein goal in grams")),
		mcp.WithNumber("fat", mcp.Required(), mcp.Description("Daily fat goal in grams")),
	)
	s.server.AddTool(setGoalsTool, s.handleSetGoals)
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	return server.ServeStdio(s.server)
}

// requestDate resolves the optional "date" argument, defaulting to today.
func requestDate(request mcp.CallToolRequest) (domain.Date, error) {
	raw := request.GetString("date", "")
	if raw == "" {
		return domain.Today(), nil
	}
	return domain.ParseDate(raw)
}

func foodData(f domain.Food) map[string]interface{} {
	return map[string]interface{}{
		"name":     f.Name,
		"calories": f.Calories,
		"carbs":    f.Carbs,
		"protein":  f.Protein,
		"fat":      f.Fat,
		"grams":    f.Grams,
	}
}

func goalsData(g domain.Goals) map[string]interface{} {
	return map[string]interface{}{
		"calories": g.Calories,
		"carbs":    g.Carbs,
		"protein":  g.Protein,
		"fat":      g.Fat,
	}
}

// dayResult builds the canonical per-day payload shared by the tools.
func (s *Server) dayResult(date domain.Date) map[string]interface{} {
	rec := s.store.Record(date)
	calories, carbs, protein, fat := rec.Totals()

	foods := make([]map[string]interface{}, 0, len(rec.Foods))
	for _, f := range rec.Foods {
		foods = append(foods, foodData(f))
	}

	return map[string]interface{}{
		"date":  date.String(),
		"foods": foods,
		"totals": map[string]interface{}{
			"calories": calories,
			"carbs":    carbs,
			"protein":  protein,
			"fat":      fat,
		},
		"goals": goalsData(s.store.Goals()),
	}
}

func toolResultJSON(result interface{}) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleGetDay handles the get_day tool.
func (s *Server) handleGetDay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := requestDate(request)
	if err != nil {
		return mcp.NewToolResultError("date must be in dd/mm/yyyy format"), nil
	}
	return toolResultJSON(s.dayResult(date))
}

// handleLogFood handles the log_food tool.
func (s *Server) handleLogFood(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required: " + err.Error()), nil
	}
	date, err := requestDate(request)
	if err != nil {
		return mcp.NewToolResultError("date must be in dd/mm/yyyy format"), nil
	}

	food := domain.Food{
		Name:     domain.TruncateName(name),
		Calories: request.GetInt("calories", 0),
		Carbs:    request.GetInt("carbs", 0),
		Protein:  request.GetInt("protein", 0),
		Fat:      request.GetInt("fat", 0),
		Grams:    request.GetInt("grams", 0),
	}

	rec := s.store.Record(date)
	rec.Foods = append(rec.Foods, food)
	saved := s.store.Save()

	result := s.dayResult(date)
	result["logged"] = foodData(food)
	result["saved"] = saved
	return toolResultJSON(result)
}

// handleDeleteFood handles the delete_food tool.
func (s *Server) handleDeleteFood(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := request.RequireInt("index")
	if err != nil {
		return mcp.NewToolResultError("index is required: " + err.Error()), nil
	}
	date, err := requestDate(request)
	if err != nil {
		return mcp.NewToolResultError("date must be in dd/mm/yyyy format"), nil
	}

	rec := s.store.Record(date)
	if index < 0 || index >= len(rec.Foods) {
		return mcp.NewToolResultError(fmt.Sprintf("index %d out of range: the day has %d entries", index, len(rec.Foods))), nil
	}
	rec.DeleteFood(index)
	saved := s.store.Save()

	result := s.dayResult(date)
	result["saved"] = saved
	return toolResultJSON(result)
}

// handleSetGoals handles the set_goals tool.
func (s *Server) handleSetGoals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var goals domain.Goals
	for _, field := range []struct {
		name string
		dst  *int
	}{
		{"calories", &goals.Calories},
		{"carbs", &goals.Carbs},
		{"protein", &goals.Protein},
		{"fat", &goals.Fat},
	} {
		v, err := request.RequireInt(field.name)
		if err != nil {
			return mcp.NewToolResultError(field.name + " is required: " + err.Error()), nil
		}
		*field.dst = v
	}

	s.store.SetGoals(goals)
	saved := s.store.Save()

	return toolResultJSON(map[string]interface{}{
		"goals": goalsData(goals),
		"saved": saved,
	})
}
