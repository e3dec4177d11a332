package session_test

import (
	"fmt"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/shape"
)

// squaresOnly always picks the square in the first color.
type squaresOnly struct{}

func (squaresOnly) IntN(int) int { return 0 }

// Example plays two squares side by side on a 4-wide board, completing the
// bottom two rows at once.
func Example() {
	s, err := session.New(session.Config{
		Cols:         4,
		Rows:         6,
		BaseSpeed:    4,
		SpeedStep:    0.5,
		PointsPerRow: 10,
	},
		session.WithGenerator(squaresOnly{}),
		session.WithListener(func(e session.Event) {
			fmt.Println(e.Kind, e.Rows)
		}),
	)
	if err != nil {
		panic(err)
	}

	s.HardDrop()
	s.Move(session.Left)
	s.Move(session.Left)
	s.HardDrop()

	p, _ := s.Piece()
	fmt.Println(s.Score(), s.Speed(), s.Phase())
	fmt.Println(p.Kind, p.Anchor)

	// Output:
	// Locked 0
	// Locked 2
	// Cleared 2
	// 20 4.5 Playing
	// Square {2 0}
}

// ExampleSession_Tick shows gravity consuming accumulated time in whole
// intervals.
func ExampleSession_Tick() {
	s, _ := session.New(session.Config{
		Cols:         10,
		Rows:         20,
		BaseSpeed:    4,
		SpeedStep:    0.5,
		PointsPerRow: 10,
	}, session.WithGenerator(squaresOnly{}))

	res := s.Tick(1.1)
	p, _ := s.Piece()
	fmt.Println(res.Steps, p.Anchor.Y, shape.Square == p.Kind)

	// Output:
	// 4 4 true
}
