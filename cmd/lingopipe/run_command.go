package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"lingopipe/internal/pipeline"
	"lingopipe/internal/timeline"
)

// Settings keys for the last-used run options. Flags that are not given
// fall back to what the previous run used.
const (
	settingTranslator = "translator"
	settingMode       = "mode"
	settingVoice      = "voice"
)

func newRunCommand(cctx *commandContext) *cobra.Command {
	var translatorFlag string
	var modeFlag string
	var voiceFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "run <audio-file>",
		Short: "Process a recording into bilingual artifacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cctx.logger()
			if err != nil {
				return err
			}
			store, err := cctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()
			prefs, err := cctx.openSettings()
			if err != nil {
				return err
			}
			defer prefs.Close()

			ctx := cmd.Context()

			translator := translatorFlag
			if !cmd.Flags().Changed("translator") {
				if translator, err = prefs.Get(ctx, settingTranslator, cfg.Translator.Default); err != nil {
					return err
				}
			}
			modeValue := modeFlag
			if !cmd.Flags().Changed("mode") {
				if modeValue, err = prefs.Get(ctx, settingMode, modeFlag); err != nil {
					return err
				}
			}
			voice := voiceFlag
			if !cmd.Flags().Changed("voice") {
				if voice, err = prefs.Get(ctx, settingVoice, voiceFlag); err != nil {
					return err
				}
			}

			mode, err := timeline.ParseMode(modeValue)
			if err != nil {
				return err
			}

			var bar *progressbar.ProgressBar
			runner := pipeline.New(cfg, store, logger).WithObserver(func(p pipeline.Progress) {
				if bar == nil {
					bar = progressbar.NewOptions(p.Total,
						progressbar.OptionSetWriter(cmd.ErrOrStderr()),
						progressbar.OptionShowCount(),
						progressbar.OptionSetWidth(20),
					)
				}
				bar.Describe(fmt.Sprintf("%s: %s", p.Stage, p.Message))
				_ = bar.Set(p.Step - 1)
			})

			result, err := runner.Run(ctx, pipeline.Request{
				AudioPath:  args[0],
				Translator: translator,
				Mode:       mode,
				Voice:      voice,
				OutputDir:  outputFlag,
			})
			if bar != nil {
				_ = bar.Finish()
				fmt.Fprintln(cmd.ErrOrStderr())
			}
			if err != nil {
				return err
			}

			// Remember the options for the next run.
			for key, value := range map[string]string{
				settingTranslator: translator,
				settingMode:       mode.ID(),
				settingVoice:      voice,
			} {
				if err := prefs.Set(ctx, key, value); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Processed %d sentences in %s", result.Sentences, result.Duration.Round(timeRounding))
			if result.ContentCached {
				fmt.Fprint(out, " (transcription cached")
				if result.SettingsCached {
					fmt.Fprint(out, ", enrichment cached")
				}
				fmt.Fprint(out, ")")
			}
			fmt.Fprintln(out)
			for _, artifact := range []string{
				result.Artifacts.Audio,
				result.Artifacts.Subtitles,
				result.Artifacts.Video,
				result.Artifacts.Transcript,
				result.Artifacts.Units,
				result.Artifacts.Sentences,
			} {
				fmt.Fprintf(out, "  %s\n", artifact)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&translatorFlag, "translator", "t", "", "Translator backend: g (OpenAI), d (DeepL), l (Lara), n (none)")
	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "1", "Subtitle mode: 0-4 or a mode name")
	cmd.Flags().StringVarP(&voiceFlag, "voice", "v", "f", "Synthesis voice: f (female) or m (male)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output directory (defaults to the configured one)")
	return cmd
}
