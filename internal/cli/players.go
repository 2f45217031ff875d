package cli

import (
	"github.com/spf13/cobra"
)

const (
	playersQuery = `query Players { players { id name instrument } }`
	playerQuery  = `query Player($id: String!) { player(id: $id) { id name instrument } }`
)

func newPlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "List every player",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Players []Player `json:"players"`
			}
			if _, err := client.Query(cmd.Context(), GraphQLRequest{Query: playersQuery}, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result.Players)
			return nil
		},
	}
}

func newPlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <id>",
		Short: "Look up one player by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Player *Player `json:"player"`
			}
			req := GraphQLRequest{Query: playerQuery, Variables: map[string]any{"id": args[0]}}
			if _, err := client.Query(cmd.Context(), req, &result); err != nil {
				return err
			}

			newOutput(cmd).Print(result.Player)
			return nil
		},
	}
}
