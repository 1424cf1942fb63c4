package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vizor-cli/vizor/filesystem"
	"github.com/vizor-cli/vizor/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Playback defaults should match the documented contract", func() {
			_ = Setup()
			So(viper.GetInt(key.PlayerIdleHideMs), ShouldEqual, 3000)
			So(viper.GetInt(key.PlayerSamplerMs), ShouldEqual, 100)
			So(viper.GetInt(key.PlayerUnmuteVolume), ShouldEqual, 50)
			So(viper.GetInt(key.GuardPollMs), ShouldEqual, 500)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("player.idle_hide_ms")
			So(result, ShouldEqual, "player_idle_hide_ms")
		})

		Convey("Env should prefix and uppercase keys", func() {
			f := Default[key.GuardEnable]
			So(f.Env(), ShouldEqual, "VIZOR_GUARD_ENABLE")
		})
	})
}
