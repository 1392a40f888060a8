package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"vrtool/pkg/device"
	"vrtool/pkg/telemetry"
)

var (
	pushBridge    string
	pushMediaDir  string
	pushRemoteDir string
	pushSerial    string
)

var pushCmd = &cobra.Command{
	Use:     "push",
	Aliases: []string{"install_to_phone"},
	Short:   "Push the sdcard_SDK media directory to the device",
	Long: `Run "adb push sdcard_SDK /sdcard/" if sdcard_SDK exists in the current
directory. Does nothing when it is missing. If adb fails, vrtool exits with
adb's exit code.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dc := cfg.Device.ToPusherConfig()
		pc := device.Config{
			Bridge:    firstNonEmpty(pushBridge, dc.Bridge),
			MediaDir:  firstNonEmpty(pushMediaDir, dc.MediaDir),
			RemoteDir: firstNonEmpty(pushRemoteDir, dc.RemoteDir),
			Serial:    firstNonEmpty(pushSerial, dc.Serial),
		}

		return track("push", func(o *telemetry.Outcome) error {
			return runPush(cmd.Context(), cmd.OutOrStdout(), pc, device.NewExecRunner())
		})
	},
}

func init() {
	pushCmd.Flags().StringVar(&pushBridge, "bridge", "", "Debug bridge binary (default adb)")
	pushCmd.Flags().StringVar(&pushMediaDir, "media-dir", "", "Local media directory (default sdcard_SDK)")
	pushCmd.Flags().StringVar(&pushRemoteDir, "remote-dir", "", "Destination on the device (default /sdcard/)")
	pushCmd.Flags().StringVarP(&pushSerial, "serial", "s", "", "Device serial when several are attached")
	rootCmd.AddCommand(pushCmd)
}

func runPush(ctx context.Context, out io.Writer, pc device.Config, runner device.Runner) error {
	if ctx == nil {
		ctx = context.Background()
	}
	_, err := device.NewPusher(runner, pc, out, logger).PushMedia(ctx)
	return err
}
