// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/aculnaig/gifdecode"
	"github.com/aculnaig/gifdecode/pkg/util/format"
	"github.com/spf13/cobra"
)

func DefineInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "info <file.gif>",
		Short:        "Print the logical screen and frame metadata of a GIF file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunInfo,
	}
	return cmd
}

func RunInfo(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	dec, err := gif.NewDecoder(bufio.NewReader(f))
	if err != nil {
		return err
	}

	screen := dec.Screen
	fmt.Printf("screen: %dx%d\n", screen.Width, screen.Height)
	if screen.HasGlobalPalette() {
		fmt.Printf("global palette: %d colors (background index %d)\n",
			screen.GlobalPaletteEntries(), screen.BackgroundColorIndex)
	} else {
		fmt.Println("global palette: none")
	}

	frames := gif.NewFrameIterator(dec)
	n := 0
	for {
		frame, err := frames.NextFrame()
		if err != nil {
			return err
		}
		if frame == nil {
			break
		}
		n++
		transparent := "none"
		if frame.TransparentIndex != nil {
			transparent = fmt.Sprintf("%d", *frame.TransparentIndex)
		}
		fmt.Printf("frame %d: (%d,%d) %dx%d delay=%s disposal=%d transparent=%s\n",
			n, frame.Left, frame.Top, frame.Width, frame.Height, format.FormatDelay(frame.DelayCS), frame.Disposal, transparent)
	}
	fmt.Printf("total frames: %d\n", n)

	return nil
}
