package logger

const SessionStartMsg = "新的一局開始"
const GameOverMsg = "遊戲結束！勝利者：%s"
const PointScoredMsg = "得分"
const SceneChangeMsg = "場景切換"
const QuitMsg = "玩家離開遊戲"
const WindowClosedMsg = "視窗已關閉"

const FontLoadFailedMsg = "字型載入失敗，改用預設字型 path: %s"
const SoundInitFailedMsg = "音效初始化失敗，靜音模式"
const ConfigLoadedMsg = "設定檔已載入"
const LogLevelChangedMsg = "Log level 更新為 %s"
const TerminalInitFailedMsg = "終端機初始化失敗"
