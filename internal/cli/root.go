package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SIIR3X/network-segmenter/ipaddr"
	"github.com/SIIR3X/network-segmenter/subnet"
)

type outputFormat string

const (
	outHuman outputFormat = "human"
	outJSON  outputFormat = "json"
	outYAML  outputFormat = "yaml"
)

var rootCmd = &cobra.Command{
	Use:   "network-segmenter <address>/<prefix length> <number of subnets>",
	Short: "IPv4/IPv6 subnet calculator",
	Long:  "network-segmenter splits a CIDR network into subnets and reports each subnet's host range, broadcast address (IPv4) and capacity.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := parseNetwork(args[0])
		if err != nil {
			return err
		}
		count, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid number of subnets: %s", args[1])
		}
		if err := n.Segment(count); err != nil {
			return err
		}
		return render(cmd, subnetReport(n.Subnets()))
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

var format outputFormat

// Execute runs the root command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP((*string)(&format), "output", "o", string(outHuman), "output format: human|json|yaml")
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(aggregateCmd)
}

// parseNetwork builds a Network from an <address>/<prefix length> token,
// deciding the family by the presence of ':'.
func parseNetwork(token string) (*subnet.Network, error) {
	if strings.Count(token, "/") != 1 {
		return nil, errors.New("invalid address/prefix format: use <address>/<prefix length>")
	}
	addrText, plenText, _ := strings.Cut(token, "/")
	addr, err := ipaddr.Parse(addrText)
	if err != nil {
		return nil, err
	}
	plen, err := strconv.Atoi(plenText)
	if err != nil {
		return nil, fmt.Errorf("invalid prefix length: %s", plenText)
	}
	return subnet.New(addr, plen)
}

func render(cmd *cobra.Command, v any) error {
	w := cmd.OutOrStdout()
	switch format {
	case outHuman:
		switch val := v.(type) {
		case []subnetRow:
			printTable(w, val)
		case []string:
			for _, line := range val {
				fmt.Fprintln(w, line)
			}
		default:
			fmt.Fprintln(w, v)
		}
	case outJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return errors.New("unknown output format")
	}
	return nil
}

// ---- Commands ----

var infoCmd = &cobra.Command{
	Use:   "info <CIDR or address>",
	Short: "Show information about an address or network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arg := args[0]
		if strings.Contains(arg, "/") {
			n, err := parseNetwork(arg)
			if err != nil {
				return err
			}
			return render(cmd, []subnetRow{networkRow(n)})
		}
		addr, err := ipaddr.Parse(arg)
		if err != nil {
			return err
		}
		out := map[string]any{
			"address":  addr.String(),
			"expanded": addr.Expanded(),
			"family":   addr.Family().String(),
		}
		return render(cmd, out)
	},
}

var expandCmd = &cobra.Command{
	Use:   "expand <IPv6 address>",
	Short: "Expand a compressed IPv6 address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := ipaddr.ParseIPv6(args[0])
		if err != nil {
			return err
		}
		return render(cmd, addr.Expanded())
	},
}

var compressCmd = &cobra.Command{
	Use:   "compress <expanded IPv6>",
	Short: "Compress an expanded IPv6 address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := ipaddr.ParseIPv6(args[0])
		if err != nil {
			return err
		}
		return render(cmd, addr.String())
	},
}

var aggregateCmd = &cobra.Command{
	Use:   "aggregate <CIDR 1> <CIDR 2> ...",
	Short: "Aggregate a list of CIDRs into the minimal covering set",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefixes := make([]netip.Prefix, 0, len(args))
		for _, a := range args {
			p, err := netip.ParsePrefix(a)
			if err != nil {
				return err
			}
			prefixes = append(prefixes, p)
		}
		res, err := subnet.Aggregate(prefixes)
		if err != nil {
			return err
		}
		list := make([]string, len(res))
		for i, p := range res {
			list[i] = p.String()
		}
		return render(cmd, list)
	},
}
