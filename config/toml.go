package config

const ZeyesConfigTemplate = `db_host = "{{ .DbHost }}"
db_port = {{ .DbPort }}
db_username = "{{ .DbUsername }}"
db_password = "{{ .DbPassword }}"
db_schema = "{{ .DbSchema }}"
in_memory = {{ .InMemory }}

server_port = {{ .ServerPort }}

l1_rpc_url = "{{ .L1RpcUrl }}"
l2_rpc_url = "{{ .L2RpcUrl }}"

poll_interval = {{ .PollInterval }}
receipt_wait_time = {{ .ReceiptWaitTime }}
`
