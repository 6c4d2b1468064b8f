package main

import (
	"github.com/ProDexortie/zdorovoeda/config"
	"github.com/ProDexortie/zdorovoeda/routes"
	"github.com/ProDexortie/zdorovoeda/utils"
)

func main() {
	config.Load()
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	r := routes.SetupRouter()
	r.Run(":" + config.C.Port)
}
