package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	solveState    string
	solveCorners  string
	solveDescribe bool
	solvePersonal bool
	solveProfile  bool
)

// errQueryFailed makes the command exit non-zero after the answer was printed.
var errQueryFailed = errors.New("query failed")

var solveCmd = &cobra.Command{
	Use:   "solve [moves...]",
	Short: "Find the shortest route to a state",
	Long: `Find the shortest route from the solved state to a configuration.

The configuration is given as a packed state number with --state
(decimal or 0x-prefixed hex), as the sticker colours of the eight corners
with --corners, or as a move sequence applied to the solved cube. Move sequences use the faces U, F and R with an optional ' (inverse)
or 2 (double) suffix. All nine moves are accepted in either metric; the
route printed uses only the moves of the chosen metric.

Corners are three colour letters each, listed slot by slot and starting
with the up or down sticker. The last corner is the fixed back-down-left
cubie, read down, left, back.

Examples:
  pocketcube solve "U F' R2"
  pocketcube solve U F R --personal
  pocketcube solve --state 506097522914230273 --metric half
  pocketcube solve --state 0x0706050403020001 --describe
  pocketcube solve --corners OGW,OWB,WGR,YGO,WRB,RGY,BYO,YBR`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveState, "state", "", "Packed state number to solve")
	solveCmd.Flags().StringVar(&solveCorners, "corners", "", "Corner sticker colours to solve, comma separated")
	solveCmd.Flags().BoolVar(&solveDescribe, "describe", false, "List the corner slots of the state")
	solveCmd.Flags().BoolVar(&solvePersonal, "personal", false, "Describe the solution in plain language")
	solveCmd.Flags().BoolVar(&solveProfile, "profile", false, "Show face and turn usage of the route")
}

func runSolve(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")
	given := 0
	for _, set := range []bool{len(args) > 0, solveState != "", solveCorners != ""} {
		if set {
			given++
		}
	}
	switch {
	case given == 0:
		return fmt.Errorf("specify a move sequence, --state or --corners")
	case given > 1:
		return fmt.Errorf("specify only one of a move sequence, --state or --corners")
	}

	ctx := cmd.Context()
	hist := openHistory(ctx)
	defer hist.Close()

	session := buildSession(ctx)

	var q *query
	switch {
	case solveState != "":
		q = runStateQuery(session, solveState)
	case solveCorners != "":
		q = runCornersQuery(session, solveCorners)
	default:
		q = runMovesQuery(session, input)
	}
	hist.add(q)

	fmt.Fprint(cmd.OutOrStdout(), renderQuery(q, answerView{
		describe: solveDescribe,
		personal: solvePersonal,
		profile:  solveProfile,
	}))

	if q.err != nil {
		return errQueryFailed
	}
	return nil
}
