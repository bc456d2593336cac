package ui

import (
	"fmt"

	"snake-modes/game"
	"snake-modes/game/manager"
	"snake-modes/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	maxScores     = 50 // Maximum number of scores to show in graph
	borderPadding = 10 // Padding around game area
)

var (
	snakeColor = rl.Color{R: 80, G: 220, B: 120, A: 255}
	headColor  = rl.Color{R: 104, G: 255, B: 156, A: 255}
)

// Scoreboard is what the stats panel reads.
type Scoreboard interface {
	GetHighScore() int
	GetScoreHistory() []manager.RunRecord
}

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	r.statsPanel = r.screenWidth / 4
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight

	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

// Draw renders one frame from a snapshot.
func (r *Renderer) Draw(snap game.Snapshot, gridSize int, board Scoreboard) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	fontSize := min(r.screenHeight/45, r.statsPanel/12)
	lineHeight := min(r.screenHeight/35, r.statsPanel/10)

	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.gameHeight - (borderPadding * 2)
	r.cellSize = min(availableWidth/int32(gridSize), availableHeight/int32(gridSize))

	r.totalGridWidth = r.cellSize * int32(gridSize)
	r.totalGridHeight = r.cellSize * int32(gridSize)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	border := rl.DarkGray
	if snap.Mode == types.Walls {
		border = rl.RayWhite
	}
	rl.DrawRectangle(r.offsetX-2, r.offsetY-2, r.totalGridWidth+4, r.totalGridHeight+4, border)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, rl.Black)

	for x := 0; x < gridSize; x++ {
		for y := 0; y < gridSize; y++ {
			rl.DrawRectangleLines(
				r.offsetX+int32(x)*r.cellSize,
				r.offsetY+int32(y)*r.cellSize,
				r.cellSize, r.cellSize, rl.Color{R: 40, G: 40, B: 48, A: 255})
		}
	}

	if (types.Grid{Size: gridSize}).InBounds(snap.Food) {
		r.drawCell(snap.Food, rl.Red)
	}
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			r.drawCell(snap.Snake[i], headColor)
			r.drawHeading(snap.Snake[i], snap.Direction)
			continue
		}
		r.drawCell(snap.Snake[i], snakeColor)
	}

	r.drawBanner(snap, fontSize)
	r.drawStatsPanel(snap, board, fontSize, lineHeight)
	rl.EndDrawing()
}

func (r *Renderer) drawCell(c types.Cell, color rl.Color) {
	rl.DrawRectangle(
		r.offsetX+int32(c.Col)*r.cellSize,
		r.offsetY+int32(c.Row)*r.cellSize,
		r.cellSize, r.cellSize, color)
}

func (r *Renderer) drawHeading(head types.Cell, d types.Direction) {
	headX := r.offsetX + int32(head.Col)*r.cellSize
	headY := r.offsetY + int32(head.Row)*r.cellSize
	halfCell := r.cellSize / 2

	switch d {
	case types.Right:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Yellow)
	case types.Left:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Yellow)
	case types.Down:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY + r.cellSize)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Yellow)
	case types.Up:
		rl.DrawTriangle(
			rl.Vector2{X: float32(headX + halfCell), Y: float32(headY)},
			rl.Vector2{X: float32(headX), Y: float32(headY + halfCell)},
			rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + halfCell)},
			rl.Yellow)
	}
}

func (r *Renderer) drawBanner(snap game.Snapshot, fontSize int32) {
	var lines []string
	switch snap.Status {
	case types.Idle:
		lines = []string{"Press Space or Enter to start", "1: walls   2: pass-through"}
	case types.GameOver:
		lines = []string{fmt.Sprintf("Game Over! (%s) Score: %d", snap.LastCollision, snap.Score), "Press Space or Enter"}
	default:
		return
	}

	for i, line := range lines {
		textWidth := rl.MeasureText(line, fontSize*2)
		rl.DrawText(line,
			r.offsetX+(r.totalGridWidth-textWidth)/2,
			r.offsetY+r.totalGridHeight/2+int32(i)*(fontSize*2+5),
			fontSize*2, rl.RayWhite)
	}
}

func (r *Renderer) drawStatsPanel(snap game.Snapshot, board Scoreboard, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(10)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, rl.DarkGray)

	rows := []string{
		fmt.Sprintf("Score: %d", snap.Score),
		fmt.Sprintf("High Score: %d", board.GetHighScore()),
		fmt.Sprintf("Length: %d", len(snap.Snake)),
		fmt.Sprintf("Speed: %dms", snap.Speed.Milliseconds()),
		fmt.Sprintf("Mode: %s", snap.Mode),
		fmt.Sprintf("Status: %s", snap.Status),
	}
	for _, row := range rows {
		rl.DrawText(row, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	r.drawScoreGraph(board.GetScoreHistory(), statsX, fontSize)
}

func (r *Renderer) drawScoreGraph(history []manager.RunRecord, graphX, fontSize int32) {
	graphY := r.screenHeight - r.graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, r.graphHeight, rl.White)
	rl.DrawText("Recent runs", graphX, graphY-fontSize-5, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Games: %d", len(history)), graphX, r.screenHeight-fontSize-5, fontSize, rl.White)

	if len(history) > maxScores {
		history = history[len(history)-maxScores:]
	}
	if len(history) < 2 {
		return
	}

	maxScore := 1
	for _, run := range history {
		if run.Score > maxScore {
			maxScore = run.Score
		}
	}

	for j := 1; j < len(history); j++ {
		x1 := graphX + int32(float32(r.graphWidth)*float32(j-1)/float32(maxScores))
		y1 := graphY + r.graphHeight - int32(float32(r.graphHeight)*float32(history[j-1].Score)/float32(maxScore))
		x2 := graphX + int32(float32(r.graphWidth)*float32(j)/float32(maxScores))
		y2 := graphY + r.graphHeight - int32(float32(r.graphHeight)*float32(history[j].Score)/float32(maxScore))
		rl.DrawLine(x1, y1, x2, y2, snakeColor)
	}
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
