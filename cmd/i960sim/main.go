// Package main provides the i960sim command line interface.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/open960/i960sim/dasm"
	"github.com/open960/i960sim/emu"
	"github.com/open960/i960sim/loader"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "i960sim",
		Short: "i960sim — Intel 80960 emulator and disassembler",
	}

	// run command
	var base uint32
	var entry uint32
	var sp uint32
	var maxInstructions uint64
	var snapshotPath string
	var savePath string
	var verbose bool

	runCmd := &cobra.Command{
		Use:   "run <image.bin>",
		Short: "Execute a flat memory image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loader.Load(args[0], base)
			if err != nil {
				return err
			}

			memory := emu.NewMemory()
			memory.LoadImage(img.Base, img.Data)

			core := emu.NewCore(
				emu.WithBus(memory),
				emu.WithMaxInstructions(maxInstructions),
				emu.WithFaultHandler(func(kind uint32) {
					fmt.Fprintf(os.Stderr, "fault 0x%05X\n", kind)
				}),
			)

			if snapshotPath != "" {
				snap, err := emu.LoadSnapshot(snapshotPath)
				if err != nil {
					return err
				}
				core.Restore(snap)
			} else {
				core.IP = img.Entry
				if cmd.Flags().Changed("entry") {
					core.IP = entry
				}
				core.R[emu.RegSP] = sp
				core.R[emu.RegFP] = sp
			}

			executed := core.Run()

			if verbose {
				fmt.Printf("Instructions executed: %d\n", executed)
				fmt.Printf("Final IP: 0x%08X\n", core.IP)
			}

			if savePath != "" {
				if err := core.Snapshot().Save(savePath); err != nil {
					return err
				}
			}

			return nil
		},
	}
	runCmd.Flags().Uint32Var(&base, "base", 0, "load address of the image")
	runCmd.Flags().Uint32Var(&entry, "entry", 0, "initial instruction pointer (defaults to the load address)")
	runCmd.Flags().Uint32Var(&sp, "sp", 0x10000, "initial stack pointer")
	runCmd.Flags().Uint64Var(&maxInstructions, "max-instructions", 1000000, "instruction budget (0 = unlimited)")
	runCmd.Flags().StringVar(&snapshotPath, "state", "", "JSON state snapshot to start from")
	runCmd.Flags().StringVar(&savePath, "save-state", "", "write the final state as a JSON snapshot")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// dasm command
	var dasmBase uint32

	dasmCmd := &cobra.Command{
		Use:   "dasm <image.bin>",
		Short: "Disassemble a flat memory image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loader.Load(args[0], dasmBase)
			if err != nil {
				return err
			}

			words := img.Words()
			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()

			addr := img.Base
			for i := 0; i < len(words); {
				op := words[i]
				var disp uint32
				if i+1 < len(words) {
					disp = words[i+1]
				}

				fmt.Fprintf(out, "%08x:\t", addr)
				n := dasm.Disassemble(out, addr, op, disp)
				fmt.Fprintln(out)

				addr += n
				i += int(n / 4)
			}

			return nil
		},
	}
	dasmCmd.Flags().Uint32Var(&dasmBase, "base", 0, "address of the first instruction")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(dasmCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
